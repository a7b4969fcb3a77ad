package models

import "time"

// IncomingPaymentSessionRequest is the data received in the body of a create payment session request
type IncomingPaymentSessionRequest struct {
	Amount              string              `json:"amount"                validate:"required,numeric"`
	Currency            string              `json:"currency"              validate:"required,len=3"`
	Country             string              `json:"country"               validate:"required,len=2"`
	Language            string              `json:"language"              validate:"required"`
	ChallengeScenario   ChallengeScenario   `json:"challenge_scenario"    validate:"omitempty,oneof=PaymentTransaction RecurringTransaction AddCard"`
	ChallengeWindowSize ChallengeWindowSize `json:"challenge_window_size" validate:"omitempty,oneof=01 02 03 04 05"`
	IsMOTO              bool                `json:"is_moto"`
	PaymentInstrumentID string              `json:"payment_instrument_id"`
}

// PaymentSessionRest is the public facing payment session returned in responses
type PaymentSessionRest struct {
	ID                         string              `json:"id"`
	Amount                     string              `json:"amount"`
	Currency                   string              `json:"currency"`
	Country                    string              `json:"country"`
	Language                   string              `json:"language"`
	IsMOTO                     bool                `json:"is_moto"`
	PaymentInstrumentID        string              `json:"payment_instrument_id,omitempty"`
	ChallengeStatus            ChallengeStatus     `json:"challenge_status"`
	ChallengeScenario          ChallengeScenario   `json:"challenge_scenario"`
	ChallengeWindowSize        ChallengeWindowSize `json:"challenge_window_size"`
	ThreeDSServerTransactionID string              `json:"three_ds_server_transaction_id,omitempty"`
	AcsSignedContent           string              `json:"acs_signed_content,omitempty"`
	RiskChallengeIndicator     string              `json:"risk_challenge_indicator,omitempty"`
	MessageVersion             string              `json:"message_version,omitempty"`
	CreatedAt                  time.Time           `json:"created_at"`
}

// BrowserInfo is the browser fingerprint collected by the client
type BrowserInfo struct {
	AcceptHeader      string `json:"accept_header"       validate:"required"`
	IPAddress         string `json:"ip_address"          validate:"required,ip"`
	JavaEnabled       bool   `json:"java_enabled"`
	JavascriptEnabled bool   `json:"javascript_enabled"`
	Language          string `json:"language"            validate:"required"`
	ColorDepth        string `json:"color_depth"`
	ScreenHeight      string `json:"screen_height"`
	ScreenWidth       string `json:"screen_width"`
	TimeZoneOffset    string `json:"time_zone_offset"`
	UserAgent         string `json:"user_agent"          validate:"required"`
}

// SDKInfo is the device fingerprint collected by a native 3DS SDK
type SDKInfo struct {
	AppID              string `json:"app_id"               validate:"required"`
	EncryptedData      string `json:"encrypted_data"       validate:"required"`
	EphemeralPublicKey string `json:"ephemeral_public_key" validate:"required"`
	MaxTimeout         string `json:"max_timeout"`
	ReferenceNumber    string `json:"reference_number"     validate:"required"`
	TransactionID      string `json:"transaction_id"       validate:"required"`
}

// IncomingAuthenticateRequest is the data received in the body of an authenticate request.
// Exactly one of BrowserInfo and SDKInfo is expected.
type IncomingAuthenticateRequest struct {
	BrowserInfo *BrowserInfo `json:"browser_info" validate:"required_without=SDKInfo,excluded_with=SDKInfo"`
	SDKInfo     *SDKInfo     `json:"sdk_info"     validate:"required_without=BrowserInfo"`
}

// AuthenticateResponse is returned from an authenticate request. The ACS
// fields are only set when an interactive challenge is required.
type AuthenticateResponse struct {
	ThreeDSServerTransactionID string          `json:"three_ds_server_transaction_id"`
	ChallengeStatus            ChallengeStatus `json:"challenge_status"`
	AcsURL                     string          `json:"acs_url,omitempty"`
	AcsTransactionID           string          `json:"acs_transaction_id,omitempty"`
	AcsSignedContent           string          `json:"acs_signed_content,omitempty"`
	ChallengeRequest           string          `json:"challenge_request,omitempty"`
}

// IncomingNotifyChallengeCompletedRequest is the data received when the client's ACS round trip completes
type IncomingNotifyChallengeCompletedRequest struct {
	ThreeDSServerTransactionID string `json:"three_ds_server_transaction_id" validate:"required"`
}
