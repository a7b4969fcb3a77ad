package helpers

import "context"

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyPaymentSession is a specific key for identifying "payment_session" contexts added to the http request
var ContextKeyPaymentSession = ContextKey("payment_session")

// ContextKeyCorrelationID is a specific key for identifying "correlation_id" contexts added to the http request
var ContextKeyCorrelationID = ContextKey("correlation_id")

// WithCorrelationID returns a copy of ctx carrying the correlation id
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, ContextKeyCorrelationID, correlationID)
}

// GetCorrelationID returns the correlation id carried by ctx, or an empty string
func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(ContextKeyCorrelationID).(string)
	return correlationID
}
