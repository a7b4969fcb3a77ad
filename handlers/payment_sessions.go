package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleCreatePaymentSession creates a payment session for a 3DS challenge
func HandleCreatePaymentSession(w http.ResponseWriter, req *http.Request) {
	var incomingPaymentSessionRequest models.IncomingPaymentSessionRequest
	if err := utils.DecodeJSONBody(req, &incomingPaymentSessionRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create payment session: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		return
	}

	paymentSession, err := challengeService.CreatePaymentSession(req.Context(), incomingPaymentSessionRequest)
	if err != nil {
		writeServiceError(w, req, fmt.Errorf("error creating payment session: [%w]", err), nil)
		return
	}

	w.Header().Set("Location", "/paymentSessions/"+paymentSession.ID)
	utils.WriteJSONWithStatus(w, req, paymentSession, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment session", log.Data{"payment_session_id": paymentSession.ID, "status": http.StatusCreated})
}

// HandleGetPaymentSession returns the payment session loaded by the payment session interceptor
func HandleGetPaymentSession(w http.ResponseWriter, req *http.Request) {
	paymentSession, ok := req.Context().Value(helpers.ContextKeyPaymentSession).(*models.PaymentSessionRest)
	if !ok || paymentSession == nil {
		log.ErrorR(req, fmt.Errorf("invalid PaymentSessionRest in request context"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("there was a problem handling your request"), http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentSession, http.StatusOK)

	log.InfoR(req, "Successfully GET request for payment session", log.Data{"payment_session_id": paymentSession.ID, "challenge_status": paymentSession.ChallengeStatus})
}

// HandleAuthenticate starts or resumes 3DS authentication of a payment session
func HandleAuthenticate(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)[interceptors.PaymentSessionIDVar]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("authenticate: no payment session id"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("payment session id is required"), http.StatusBadRequest)
		return
	}

	var incomingAuthenticateRequest models.IncomingAuthenticateRequest
	if err := utils.DecodeJSONBody(req, &incomingAuthenticateRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to authenticate payment session: [%v]", err), log.Data{"payment_session_id": id})
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		return
	}

	response, err := challengeService.Authenticate(req.Context(), id, incomingAuthenticateRequest)
	if err != nil {
		writeServiceError(w, req, fmt.Errorf("error authenticating payment session: [%w]", err), log.Data{"payment_session_id": id})
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)

	log.InfoR(req, "Successful POST request to authenticate payment session", log.Data{"payment_session_id": id, "challenge_status": response.ChallengeStatus})
}

// HandleNotifyChallengeCompleted records that the client finished the ACS challenge
func HandleNotifyChallengeCompleted(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)[interceptors.PaymentSessionIDVar]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("notify challenge completed: no payment session id"))
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("payment session id is required"), http.StatusBadRequest)
		return
	}

	var incomingNotifyRequest models.IncomingNotifyChallengeCompletedRequest
	if err := utils.DecodeJSONBody(req, &incomingNotifyRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to notify challenge completed: [%v]", err), log.Data{"payment_session_id": id})
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(err.Error()), http.StatusBadRequest)
		return
	}

	paymentSession, err := challengeService.NotifyChallengeCompleted(req.Context(), id, incomingNotifyRequest)
	if err != nil {
		writeServiceError(w, req, fmt.Errorf("error completing challenge: [%w]", err), log.Data{"payment_session_id": id})
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentSession, http.StatusOK)

	log.InfoR(req, "Successful POST request to notify challenge completed", log.Data{"payment_session_id": id, "challenge_status": paymentSession.ChallengeStatus})
}
