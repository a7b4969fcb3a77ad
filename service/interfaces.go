package service

//go:generate mockgen -source=interfaces.go -destination=mock_service.go -package=service

import (
	"context"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// ThreeDSProvider is the capability used to authenticate cardholders. It is
// injected at construction time; a service without one is misconfigured.
type ThreeDSProvider interface {
	Authenticate(ctx context.Context, areq *models.AuthenticationRequest) (*models.AuthenticationResult, error)
	GetChallengeResult(ctx context.Context, threeDSServerTransID string) (*models.ChallengeResult, error)
}

// PaymentOrchestrator supplies the latest snapshot of a checkout or payment request
type PaymentOrchestrator interface {
	GetCheckoutClientActions(ctx context.Context, checkoutRequestID string) (*models.CheckoutRequestClientActions, error)
	GetPaymentRequestClientActions(ctx context.Context, paymentRequestID string) (*models.PaymentRequestClientActions, error)
}

// ChallengeOutcomeProducer publishes the outcome of a payment session that reached a terminal status
type ChallengeOutcomeProducer interface {
	Publish(ctx context.Context, session *models.PaymentSessionDB) error
}

// ChallengeSessionProvider creates and reads the payment sessions that back a
// challenge. EnsurePaymentSession creates at most one session per id.
type ChallengeSessionProvider interface {
	EnsurePaymentSession(ctx context.Context, id string, req models.IncomingPaymentSessionRequest) (*models.PaymentSessionRest, error)
	GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionRest, error)
}

// PartnerSettingsProvider returns the ordered component list a partner has
// declared. A partner without settings gets nil.
type PartnerSettingsProvider interface {
	GetComponentSettings(ctx context.Context, partner string) ([]string, error)
}
