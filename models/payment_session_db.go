package models

import "time"

// PaymentSessionDB contains all payment session details to be stored in the DB
type PaymentSessionDB struct {
	ID                   string               `bson:"_id"`
	Version              int64                `bson:"version"`
	Data                 PaymentSessionDataDB `bson:"data"`
	ThreeDS              ThreeDSDataDB        `bson:"three_ds"`
	Attempts             ChallengeAttemptsDB  `bson:"attempts"`
	AuthenticateInFlight bool                 `bson:"authenticate_in_flight"`
	InFlightSince        *time.Time           `bson:"in_flight_since,omitempty"`
}

// PaymentSessionDataDB is the purchase being authenticated
type PaymentSessionDataDB struct {
	Amount              string              `bson:"amount"`
	Currency            string              `bson:"currency"`
	Country             string              `bson:"country"`
	Language            string              `bson:"language"`
	IsMOTO              bool                `bson:"is_moto"`
	PaymentInstrumentID string              `bson:"payment_instrument_id,omitempty"`
	ChallengeStatus     ChallengeStatus     `bson:"challenge_status"`
	ChallengeScenario   ChallengeScenario   `bson:"challenge_scenario"`
	ChallengeWindowSize ChallengeWindowSize `bson:"challenge_window_size"`
	CreatedAt           time.Time           `bson:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at"`
}

// ThreeDSDataDB holds the 3DS exchange for the session
type ThreeDSDataDB struct {
	ServerTransactionID    string `bson:"server_transaction_id,omitempty"`
	AcsTransactionID       string `bson:"acs_transaction_id,omitempty"`
	AcsURL                 string `bson:"acs_url,omitempty"`
	AcsSignedContent       string `bson:"acs_signed_content,omitempty"`
	ChallengeRequest       string `bson:"challenge_request,omitempty"`
	RiskChallengeIndicator string `bson:"risk_challenge_indicator,omitempty"`
	MessageVersion         string `bson:"message_version,omitempty"`
	AuthenticationValue    string `bson:"authentication_value,omitempty"`
	ECI                    string `bson:"eci,omitempty"`
	TransStatus            string `bson:"trans_status,omitempty"`
	TransStatusReason      string `bson:"trans_status_reason,omitempty"`
	ChallengeCancel        string `bson:"challenge_cancel,omitempty"`
}

// ChallengeAttemptsDB holds the server side attempt counters
type ChallengeAttemptsDB struct {
	ChallengeAttempts  int        `bson:"challenge_attempts"`
	ValidationAttempts int        `bson:"validation_attempts"`
	ChallengeIssuedAt  *time.Time `bson:"challenge_issued_at,omitempty"`
}
