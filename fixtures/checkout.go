package fixtures

import (
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/shopspring/decimal"
)

var PaymentSessionID = "b4a7c0f6-9c8f-4c1d-9d4a-2b1f0b6d2e11"
var ThreeDSServerTransID = "8a880dc0-d2d2-4067-bcb1-b08d1690b26e"
var PaymentInstrumentID = "pi-visa-4242"

// GetPaymentSessionDB returns a stored payment session in the given status
func GetPaymentSessionDB(status models.ChallengeStatus) *models.PaymentSessionDB {
	createdAt := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	session := &models.PaymentSessionDB{
		ID:      PaymentSessionID,
		Version: 1,
		Data: models.PaymentSessionDataDB{
			Amount:              "10.50",
			Currency:            "GBP",
			Country:             "GB",
			Language:            "en-GB",
			PaymentInstrumentID: PaymentInstrumentID,
			ChallengeStatus:     status,
			ChallengeScenario:   models.ScenarioPaymentTransaction,
			ChallengeWindowSize: models.ChallengeWindowSizeFullPage,
			CreatedAt:           createdAt,
			UpdatedAt:           createdAt,
		},
	}
	if status != models.ChallengeStatusUnknown {
		session.ThreeDS.ServerTransactionID = ThreeDSServerTransID
	}
	return session
}

// GetIncomingPaymentSessionRequest returns a valid create payment session body
func GetIncomingPaymentSessionRequest() models.IncomingPaymentSessionRequest {
	return models.IncomingPaymentSessionRequest{
		Amount:              "10.50",
		Currency:            "GBP",
		Country:             "GB",
		Language:            "en-GB",
		PaymentInstrumentID: PaymentInstrumentID,
	}
}

// GetBrowserAuthenticateRequest returns an authenticate body for a browser channel
func GetBrowserAuthenticateRequest() models.IncomingAuthenticateRequest {
	return models.IncomingAuthenticateRequest{
		BrowserInfo: &models.BrowserInfo{
			AcceptHeader:      "text/html",
			IPAddress:         "192.168.0.1",
			JavascriptEnabled: true,
			Language:          "en-GB",
			ColorDepth:        "24",
			ScreenHeight:      "1080",
			ScreenWidth:       "1920",
			TimeZoneOffset:    "0",
			UserAgent:         "Mozilla/5.0",
		},
	}
}

// GetChallengeAuthenticationResult returns an RRes asking for an interactive challenge
func GetChallengeAuthenticationResult() *models.AuthenticationResult {
	return &models.AuthenticationResult{
		ThreeDSServerTransID:   ThreeDSServerTransID,
		TransStatus:            "C",
		AcsTransID:             "acs-trans-1",
		AcsURL:                 "https://acs.example.com/challenge",
		AcsSignedContent:       "eyJhbGciOiJQUzI1NiJ9",
		ChallengeRequest:       "eyJtZXNzYWdlVHlwZSI6IkNSZXEifQ",
		RiskChallengeIndicator: "04",
		MessageVersion:         "2.2.0",
	}
}

// GetCardPaymentMethods returns visa and mastercard in the credit card family
func GetCardPaymentMethods() []models.PaymentMethod {
	return []models.PaymentMethod{
		{PaymentMethodFamily: "credit_card", PaymentMethodType: "visa"},
		{PaymentMethodFamily: "credit_card", PaymentMethodType: "mc"},
	}
}

// GetPaymentMethods returns cards, paypal and an express checkout wallet
func GetPaymentMethods() []models.PaymentMethod {
	return append(GetCardPaymentMethods(),
		models.PaymentMethod{PaymentMethodFamily: "ewallet", PaymentMethodType: "paypal"},
		models.PaymentMethod{
			PaymentMethodFamily: "ewallet",
			PaymentMethodType:   "googlepay",
			Capabilities:        []string{models.PaymentMethodCapabilityExpressCheckout},
		},
	)
}

// GetOrderDetails returns order details with the given methods and pending actions
func GetOrderDetails(methods []models.PaymentMethod, actions ...models.ClientAction) models.OrderDetails {
	return models.OrderDetails{
		Country:        "GB",
		Currency:       "GBP",
		Language:       "en-GB",
		Amount:         decimal.RequireFromString("12.00"),
		TaxAmount:      decimal.RequireFromString("2.00"),
		SubTotalAmount: decimal.RequireFromString("10.00"),
		Profile: &models.Profile{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		},
		PaymentMethods: methods,
		ClientActions:  actions,
		Capabilities: models.RequestCapabilities{
			ComputeTax: true,
		},
	}
}

// GetCheckoutSnapshot returns a checkout snapshot pending a client action
func GetCheckoutSnapshot(methods []models.PaymentMethod, actions ...models.ClientAction) *models.CheckoutRequestClientActions {
	return &models.CheckoutRequestClientActions{
		CheckoutRequestID: "cr-123",
		Status:            models.CheckoutPendingClientAction,
		OrderDetails:      GetOrderDetails(methods, actions...),
	}
}

// GetPaymentRequestSnapshot returns a payment request snapshot pending a client action
func GetPaymentRequestSnapshot(methods []models.PaymentMethod, actions ...models.ClientAction) *models.PaymentRequestClientActions {
	return &models.PaymentRequestClientActions{
		PaymentRequestID: "pr-123",
		Status:           models.PaymentRequestPendingClientAction,
		OrderDetails:     GetOrderDetails(methods, actions...),
	}
}

// GetSelectPaymentMethodAction returns a payment method selection action
func GetSelectPaymentMethodAction() models.ClientAction {
	return models.ClientAction{Type: models.ClientActionSelectPaymentMethod}
}

// GetHandleChallengeAction returns a 3DS challenge action, optionally for an existing session
func GetHandleChallengeAction(paymentSessionID string) models.ClientAction {
	return models.ClientAction{
		Type:              models.ClientActionHandleChallenge,
		ChallengeType:     "ThreeDS2",
		ChallengeScenario: models.ScenarioPaymentTransaction,
		PaymentSessionID:  paymentSessionID,
		PaymentInstrument: &models.PaymentInstrument{
			PaymentInstrumentID: PaymentInstrumentID,
			PaymentMethod:       models.PaymentMethod{PaymentMethodFamily: "credit_card", PaymentMethodType: "visa"},
		},
	}
}
