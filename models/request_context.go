package models

// Feature flights that change how the next client action is resolved or composed
const (
	FlightHideOrderSummaryWhenNoTax = "hideOrderSummaryWhenNoTax"
	FlightPartnerComponentSettings  = "partnerComponentSettings"
	FlightDisableExpressCheckout    = "disableExpressCheckout"
)

// RequestContext carries the caller's partner, locale and enabled flights.
// It is built once per inbound request and passed explicitly to every call.
type RequestContext struct {
	CorrelationID string
	Partner       string
	Country       string
	Language      string
	Flights       []string
}

// IsFlightEnabled reports whether the caller has flight enabled
func (rc RequestContext) IsFlightEnabled(flight string) bool {
	for _, f := range rc.Flights {
		if f == flight {
			return true
		}
	}
	return false
}
