package helpers

import (
	"net/http"
	"strings"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/google/uuid"
)

const (
	// CorrelationIDHeader is propagated to every downstream call
	CorrelationIDHeader = "X-Request-Id"
	// FlightHeader lists the feature flights exposed to the caller, comma separated
	FlightHeader = "x-ms-flight"

	partnerQueryParam  = "partner"
	countryQueryParam  = "country"
	languageQueryParam = "language"
)

// GetCorrelationIDFromRequest returns the caller's correlation id, generating one if absent
func GetCorrelationIDFromRequest(r *http.Request) string {
	if correlationID := r.Header.Get(CorrelationIDHeader); correlationID != "" {
		return correlationID
	}
	return uuid.NewString()
}

// GetRequestContext builds the explicit request context from the request query and headers
func GetRequestContext(r *http.Request) models.RequestContext {
	query := r.URL.Query()

	return models.RequestContext{
		CorrelationID: GetCorrelationID(r.Context()),
		Partner:       strings.ToLower(query.Get(partnerQueryParam)),
		Country:       strings.ToUpper(query.Get(countryQueryParam)),
		Language:      query.Get(languageQueryParam),
		Flights:       getFlights(r),
	}
}

func getFlights(r *http.Request) []string {
	header := r.Header.Get(FlightHeader)
	if len(header) == 0 {
		return nil
	}

	var flights []string
	for _, flight := range strings.Split(header, ",") {
		flight = strings.TrimSpace(flight)
		if flight != "" && !contains(flights, flight) {
			flights = append(flights, flight)
		}
	}
	return flights
}

// contains tells whether array contains s.
func contains(array []string, s string) bool {
	for _, n := range array {
		if s == n {
			return true
		}
	}
	return false
}
