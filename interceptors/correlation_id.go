package interceptors

import (
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
)

// CorrelationIDIntercept carries the caller's correlation id, or a new one, through the request
// context and echoes it on the response
func CorrelationIDIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := helpers.GetCorrelationIDFromRequest(r)
		w.Header().Set(helpers.CorrelationIDHeader, correlationID)
		next.ServeHTTP(w, r.WithContext(helpers.WithCorrelationID(r.Context(), correlationID)))
	})
}
