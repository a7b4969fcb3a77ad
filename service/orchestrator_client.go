package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

const orchestratorName = "payment orchestrator"

// PaymentOrchestratorClient calls the Payment Orchestrator over HTTP
type PaymentOrchestratorClient struct {
	downstream downstreamClient
}

// NewPaymentOrchestratorClient returns a client for the orchestrator at baseURL
func NewPaymentOrchestratorClient(baseURL string, httpClient *http.Client) *PaymentOrchestratorClient {
	return &PaymentOrchestratorClient{
		downstream: downstreamClient{
			name:       orchestratorName,
			baseURL:    baseURL,
			httpClient: httpClient,
		},
	}
}

// GetCheckoutClientActions returns the outstanding client actions of a checkout
func (c *PaymentOrchestratorClient) GetCheckoutClientActions(ctx context.Context, checkoutRequestID string) (*models.CheckoutRequestClientActions, error) {
	snapshot := &models.CheckoutRequestClientActions{}
	path := "/checkoutRequests/" + url.PathEscape(checkoutRequestID) + "/clientActions"
	if err := c.downstream.doJSON(ctx, http.MethodGet, path, nil, snapshot); err != nil {
		return nil, notFoundAs(err, "checkout", checkoutRequestID)
	}
	return snapshot, nil
}

// GetPaymentRequestClientActions returns the outstanding client actions of a payment request
func (c *PaymentOrchestratorClient) GetPaymentRequestClientActions(ctx context.Context, paymentRequestID string) (*models.PaymentRequestClientActions, error) {
	snapshot := &models.PaymentRequestClientActions{}
	path := "/paymentRequests/" + url.PathEscape(paymentRequestID) + "/clientActions"
	if err := c.downstream.doJSON(ctx, http.MethodGet, path, nil, snapshot); err != nil {
		return nil, notFoundAs(err, "payment request", paymentRequestID)
	}
	return snapshot, nil
}
