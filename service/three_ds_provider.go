package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

const threeDSProviderName = "3DS provider"

// ThreeDSProviderClient calls the external 3DS server over HTTP
type ThreeDSProviderClient struct {
	downstream downstreamClient
}

// NewThreeDSProviderClient returns a client for the 3DS provider at baseURL
func NewThreeDSProviderClient(baseURL, bearerToken string, httpClient *http.Client) *ThreeDSProviderClient {
	return &ThreeDSProviderClient{
		downstream: downstreamClient{
			name:        threeDSProviderName,
			baseURL:     baseURL,
			bearerToken: bearerToken,
			httpClient:  httpClient,
		},
	}
}

// Authenticate sends the AReq and returns the provider's RRes
func (c *ThreeDSProviderClient) Authenticate(ctx context.Context, areq *models.AuthenticationRequest) (*models.AuthenticationResult, error) {
	result := &models.AuthenticationResult{}
	if err := c.downstream.doJSON(ctx, http.MethodPost, "/authenticate", areq, result); err != nil {
		return nil, notFoundAsIntegration(err)
	}
	return result, nil
}

// GetChallengeResult fetches the ACS reported result of the challenge for the transaction
func (c *ThreeDSProviderClient) GetChallengeResult(ctx context.Context, threeDSServerTransID string) (*models.ChallengeResult, error) {
	result := &models.ChallengeResult{}
	path := "/transactions/" + url.PathEscape(threeDSServerTransID) + "/challengeResult"
	if err := c.downstream.doJSON(ctx, http.MethodGet, path, nil, result); err != nil {
		return nil, notFoundAsIntegration(err)
	}
	return result, nil
}
