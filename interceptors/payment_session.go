package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// PaymentSessionIDVar is the route variable holding the payment session id
const PaymentSessionIDVar = "payment_session_id"

// PaymentSessionInterceptor contains the session provider used in the interceptor
type PaymentSessionInterceptor struct {
	Sessions service.ChallengeSessionProvider
}

// PaymentSessionIntercept loads the payment session named in the route into the request context
func (interceptor PaymentSessionInterceptor) PaymentSessionIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[PaymentSessionIDVar]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("PaymentSessionInterceptor error: no payment session id"))
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("payment session id is required"), http.StatusBadRequest)
			return
		}

		paymentSession, err := interceptor.Sessions.GetPaymentSession(r.Context(), id)
		if err != nil {
			responseType := service.GetResponseType(err)
			log.ErrorR(r, fmt.Errorf("PaymentSessionInterceptor error when retrieving payment session: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("payment session not found"), http.StatusNotFound)
			default:
				utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("error retrieving payment session"), http.StatusInternalServerError)
			}
			return
		}

		log.TraceR(r, "PaymentSessionInterceptor loaded payment session", log.Data{"payment_session_id": id, "challenge_status": paymentSession.ChallengeStatus})

		// Store paymentSession in context to use later in the handler
		ctx := context.WithValue(r.Context(), helpers.ContextKeyPaymentSession, paymentSession)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
