package service

import (
	"context"
	"errors"
)

// ResponseType enumerates the outcomes a service call can have
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response
	Conflict

	// TerminalFailure response
	TerminalFailure

	// BadGateway response
	BadGateway

	// Unavailable response
	Unavailable
)

var vals = [...]string{
	"invalid-data",
	"error",
	"not-found",
	"success",
	"conflict",
	"terminal-failure",
	"bad-gateway",
	"unavailable",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

type kinder interface {
	Kind() string
}

var kindToResponseType = map[string]ResponseType{
	KindValidation:       InvalidData,
	KindNotFound:         NotFound,
	KindConflict:         Conflict,
	KindTerminalFailure:  TerminalFailure,
	KindIntegration:      BadGateway,
	KindTransientService: Unavailable,
}

// ErrorKind returns the classification of err
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTransientService
	}
	return KindInternal
}

// GetResponseType maps the result of a service call to a ResponseType
func GetResponseType(err error) ResponseType {
	if err == nil {
		return Success
	}
	if rt, ok := kindToResponseType[ErrorKind(err)]; ok {
		return rt
	}
	return Error
}
