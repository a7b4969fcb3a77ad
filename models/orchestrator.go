package models

import "github.com/shopspring/decimal"

// PaymentRequestStatus is the lifecycle state of a standalone payment request
type PaymentRequestStatus string

// Payment request statuses. Abandoned is reachable from every non terminal state.
const (
	PaymentRequestPendingClientAction       PaymentRequestStatus = "PendingClientAction"
	PaymentRequestPendingInitialTransaction PaymentRequestStatus = "PendingInitialTransaction"
	PaymentRequestPendingProcessing         PaymentRequestStatus = "PendingProcessing"
	PaymentRequestPendingNextTransaction    PaymentRequestStatus = "PendingNextTransaction"
	PaymentRequestCompleted                 PaymentRequestStatus = "Completed"
	PaymentRequestAbandoned                 PaymentRequestStatus = "Abandoned"
)

// IsValid reports whether s is a known payment request status
func (s PaymentRequestStatus) IsValid() bool {
	switch s {
	case PaymentRequestPendingClientAction, PaymentRequestPendingInitialTransaction, PaymentRequestPendingProcessing,
		PaymentRequestPendingNextTransaction, PaymentRequestCompleted, PaymentRequestAbandoned:
		return true
	}
	return false
}

// IsTerminal reports whether the payment request can no longer progress
func (s PaymentRequestStatus) IsTerminal() bool {
	return s == PaymentRequestCompleted || s == PaymentRequestAbandoned
}

var paymentRequestTransitions = map[PaymentRequestStatus][]PaymentRequestStatus{
	PaymentRequestPendingClientAction:       {PaymentRequestPendingInitialTransaction},
	PaymentRequestPendingInitialTransaction: {PaymentRequestPendingProcessing},
	PaymentRequestPendingProcessing:         {PaymentRequestPendingNextTransaction, PaymentRequestCompleted},
	PaymentRequestPendingNextTransaction:    {PaymentRequestPendingProcessing, PaymentRequestCompleted},
}

// CanTransitionTo reports whether a payment request in status s may move to next
func (s PaymentRequestStatus) CanTransitionTo(next PaymentRequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == PaymentRequestAbandoned {
		return true
	}
	for _, allowed := range paymentRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CheckoutStatus is the lifecycle state of a checkout request
type CheckoutStatus string

// Checkout statuses. Created and HandlePaymentChallenge only exist for checkouts.
const (
	CheckoutCreated                   CheckoutStatus = "Created"
	CheckoutPendingClientAction       CheckoutStatus = "PendingClientAction"
	CheckoutHandlePaymentChallenge    CheckoutStatus = "HandlePaymentChallenge"
	CheckoutPendingInitialTransaction CheckoutStatus = "PendingInitialTransaction"
	CheckoutPendingProcessing         CheckoutStatus = "PendingProcessing"
	CheckoutPendingNextTransaction    CheckoutStatus = "PendingNextTransaction"
	CheckoutCompleted                 CheckoutStatus = "Completed"
	CheckoutAbandoned                 CheckoutStatus = "Abandoned"
)

// IsValid reports whether s is a known checkout status
func (s CheckoutStatus) IsValid() bool {
	switch s {
	case CheckoutCreated, CheckoutPendingClientAction, CheckoutHandlePaymentChallenge, CheckoutPendingInitialTransaction,
		CheckoutPendingProcessing, CheckoutPendingNextTransaction, CheckoutCompleted, CheckoutAbandoned:
		return true
	}
	return false
}

// IsTerminal reports whether the checkout can no longer progress
func (s CheckoutStatus) IsTerminal() bool {
	return s == CheckoutCompleted || s == CheckoutAbandoned
}

var checkoutTransitions = map[CheckoutStatus][]CheckoutStatus{
	CheckoutCreated:                   {CheckoutPendingClientAction},
	CheckoutPendingClientAction:       {CheckoutHandlePaymentChallenge, CheckoutPendingInitialTransaction},
	CheckoutHandlePaymentChallenge:    {CheckoutPendingClientAction, CheckoutPendingInitialTransaction},
	CheckoutPendingInitialTransaction: {CheckoutPendingProcessing},
	CheckoutPendingProcessing:         {CheckoutPendingNextTransaction, CheckoutCompleted},
	CheckoutPendingNextTransaction:    {CheckoutPendingProcessing, CheckoutCompleted},
}

// CanTransitionTo reports whether a checkout in status s may move to next
func (s CheckoutStatus) CanTransitionTo(next CheckoutStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == CheckoutAbandoned {
		return true
	}
	for _, allowed := range checkoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ClientActionType is the next step the client has to take
type ClientActionType string

// Client action types
const (
	ClientActionSelectPaymentMethod ClientActionType = "SelectPaymentMethod"
	ClientActionHandleChallenge     ClientActionType = "HandleChallenge"
)

// ClientAction is a directive telling the client which UI step to render next
type ClientAction struct {
	Type              ClientActionType   `json:"type"`
	ChallengeType     string             `json:"challengeType,omitempty"`
	ChallengeScenario ChallengeScenario  `json:"challengeScenario,omitempty"`
	PaymentInstrument *PaymentInstrument `json:"paymentInstrument,omitempty"`
	PaymentSessionID  string             `json:"paymentSessionId,omitempty"`
}

// PaymentMethod is a payment method the customer is eligible to use
type PaymentMethod struct {
	PaymentMethodFamily string   `json:"paymentMethodFamily"`
	PaymentMethodType   string   `json:"paymentMethodType"`
	Capabilities        []string `json:"capabilities,omitempty"`
	DisplayName         string   `json:"displayName,omitempty"`
}

// PaymentMethodCapabilityExpressCheckout marks a method that can complete
// the purchase on its own, e.g. a wallet
const PaymentMethodCapabilityExpressCheckout = "expressCheckout"

// HasCapability reports whether the payment method declares capability c
func (pm PaymentMethod) HasCapability(c string) bool {
	for _, capability := range pm.Capabilities {
		if capability == c {
			return true
		}
	}
	return false
}

// PaymentInstrument is a payment instrument already attached to the request
type PaymentInstrument struct {
	PaymentInstrumentID string        `json:"paymentInstrumentId"`
	PaymentMethod       PaymentMethod `json:"paymentMethod"`
}

// LineItem is a single purchased item
type LineItem struct {
	ProductID   string          `json:"productId"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
}

// Profile is the customer profile attached to the request
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// RequestCapabilities are the partner controlled switches on a request
type RequestCapabilities struct {
	ComputeTax            bool `json:"computeTax"`
	SendEmail             bool `json:"sendEmail"`
	CollectBillingAddress bool `json:"collectBillingAddress"`
}

// OrderDetails is the part of an orchestrator snapshot shared by checkouts and payment requests
type OrderDetails struct {
	Country            string              `json:"country"`
	Currency           string              `json:"currency"`
	Language           string              `json:"language"`
	Amount             decimal.Decimal     `json:"amount"`
	TaxAmount          decimal.Decimal     `json:"taxAmount"`
	SubTotalAmount     decimal.Decimal     `json:"subTotalAmount"`
	LineItems          []LineItem          `json:"lineItems,omitempty"`
	Profile            *Profile            `json:"profile,omitempty"`
	PaymentInstruments []PaymentInstrument `json:"paymentInstruments,omitempty"`
	PaymentMethods     []PaymentMethod     `json:"paymentMethods,omitempty"`
	ClientActions      []ClientAction      `json:"clientActions,omitempty"`
	Capabilities       RequestCapabilities `json:"capabilities"`
}

// PaymentRequestClientActions is the orchestrator snapshot of a standalone payment request
type PaymentRequestClientActions struct {
	PaymentRequestID string               `json:"paymentRequestId"`
	Status           PaymentRequestStatus `json:"status"`
	OrderDetails
}

// CheckoutRequestClientActions is the orchestrator snapshot of a checkout
type CheckoutRequestClientActions struct {
	CheckoutRequestID string         `json:"checkoutRequestId"`
	Status            CheckoutStatus `json:"status"`
	OrderDetails
}

// RequestType distinguishes checkouts from standalone payment requests
type RequestType string

// Request types
const (
	RequestTypeCheckout       RequestType = "checkout"
	RequestTypePaymentRequest RequestType = "paymentRequest"
)
