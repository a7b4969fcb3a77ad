package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
)

// downstreamClient makes JSON calls to a downstream service and translates
// failures into the service error vocabulary
type downstreamClient struct {
	name        string
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

func (c *downstreamClient) client() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return http.DefaultClient
}

func (c *downstreamClient) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	correlationID := helpers.GetCorrelationID(ctx)

	var requestBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request to %s: [%w]", c.name, err)
		}
		requestBody = bytes.NewBuffer(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return fmt.Errorf("error generating request for %s: [%w]", c.name, err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("content-type", "application/json")
	if c.bearerToken != "" {
		request.Header.Add("authorization", "Bearer "+c.bearerToken)
	}
	if correlationID != "" {
		request.Header.Add(helpers.CorrelationIDHeader, correlationID)
	}

	resp, err := c.client().Do(request)
	if err != nil {
		return &TransientServiceError{Downstream: c.name, CorrelationID: correlationID, Err: err}
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientServiceError{Downstream: c.name, CorrelationID: correlationID, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{
			Resource:      c.name + " resource",
			ID:            path,
			Downstream:    c.name,
			CorrelationID: correlationID,
			StatusCode:    resp.StatusCode,
		}
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return &TransientServiceError{
			Downstream:    c.name,
			CorrelationID: correlationID,
			StatusCode:    resp.StatusCode,
			Err:           fmt.Errorf("error status [%d] back from %s", resp.StatusCode, c.name),
		}
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return &IntegrationError{
			Downstream:    c.name,
			CorrelationID: correlationID,
			StatusCode:    resp.StatusCode,
			Err:           fmt.Errorf("unexpected status [%d] back from %s", resp.StatusCode, c.name),
		}
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(responseBody, out); err != nil {
		return &IntegrationError{
			Downstream:    c.name,
			CorrelationID: correlationID,
			StatusCode:    resp.StatusCode,
			Err:           fmt.Errorf("error reading response: [%w]", err),
		}
	}

	return nil
}

// notFoundAs renames a downstream 404 after the resource the caller asked for
func notFoundAs(err error, resource, id string) error {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		notFound.Resource = resource
		notFound.ID = id
	}
	return err
}

// notFoundAsIntegration reports a downstream 404 for something this service
// already holds a reference to as a broken contract
func notFoundAsIntegration(err error) error {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return &IntegrationError{
			Downstream:    notFound.Downstream,
			CorrelationID: notFound.CorrelationID,
			StatusCode:    notFound.StatusCode,
			Err:           err,
		}
	}
	return err
}
