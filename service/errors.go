package service

import (
	"fmt"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// Error kinds, used for logging and for choosing the response status
const (
	KindValidation       = "validation"
	KindIntegration      = "integration"
	KindTransientService = "transient_service"
	KindTerminalFailure  = "terminal_challenge_failure"
	KindNotFound         = "not_found"
	KindConflict         = "conflict"
	KindInternal         = "internal"
)

// ValidationError is returned for malformed or missing input. It is not retriable.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: [%v]", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Kind classifies the error
func (e *ValidationError) Kind() string { return KindValidation }

// IntegrationError is returned when a downstream service breaks its contract,
// e.g. an orchestrator snapshot that cannot be parsed
type IntegrationError struct {
	Downstream    string
	CorrelationID string
	StatusCode    int
	Err           error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration error from %s (correlation id [%s], status [%d]): [%v]", e.Downstream, e.CorrelationID, e.StatusCode, e.Err)
}

func (e *IntegrationError) Unwrap() error { return e.Err }

// Kind classifies the error
func (e *IntegrationError) Kind() string { return KindIntegration }

// TransientServiceError is returned when a downstream call timed out or
// failed with a 5xx. The caller may retry.
type TransientServiceError struct {
	Downstream    string
	CorrelationID string
	StatusCode    int
	Err           error
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("transient error from %s (correlation id [%s], status [%d]): [%v]", e.Downstream, e.CorrelationID, e.StatusCode, e.Err)
}

func (e *TransientServiceError) Unwrap() error { return e.Err }

// Kind classifies the error
func (e *TransientServiceError) Kind() string { return KindTransientService }

// TerminalChallengeFailure is returned when the payment session has ended in
// a failed challenge. A new payment session must be created.
type TerminalChallengeFailure struct {
	PaymentSessionID string
	Status           models.ChallengeStatus
	Reason           string
}

func (e *TerminalChallengeFailure) Error() string {
	msg := fmt.Sprintf("payment session [%s] challenge ended with status [%s]", e.PaymentSessionID, e.Status)
	if e.Reason != "" {
		msg += fmt.Sprintf(" (%s)", e.Reason)
	}
	return msg
}

// Kind classifies the error
func (e *TerminalChallengeFailure) Kind() string { return KindTerminalFailure }

// NotFoundError is returned when a resource does not exist. Downstream is set
// when a downstream service reported the 404.
type NotFoundError struct {
	Resource      string
	ID            string
	Downstream    string
	CorrelationID string
	StatusCode    int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found. id: %s", e.Resource, e.ID)
}

// Kind classifies the error
func (e *NotFoundError) Kind() string { return KindNotFound }

// ConflictError is returned when a concurrent request holds or changed the resource
type ConflictError struct {
	Resource string
	ID       string
	Message  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s [%s] conflict: %s", e.Resource, e.ID, e.Message)
}

// Kind classifies the error
func (e *ConflictError) Kind() string { return KindConflict }
