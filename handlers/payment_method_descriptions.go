package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

const requestIDVar = "request_id"

// HandleGetCheckoutDescriptions describes the UI for the next client action of a checkout
func HandleGetCheckoutDescriptions(w http.ResponseWriter, req *http.Request) {
	handleGetDescriptions(w, req, models.RequestTypeCheckout)
}

// HandleGetPaymentRequestDescriptions describes the UI for the next client action of a payment request
func HandleGetPaymentRequestDescriptions(w http.ResponseWriter, req *http.Request) {
	handleGetDescriptions(w, req, models.RequestTypePaymentRequest)
}

func handleGetDescriptions(w http.ResponseWriter, req *http.Request, requestType models.RequestType) {
	id := mux.Vars(req)[requestIDVar]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment method descriptions: no request id"), log.Data{"request_type": requestType})
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("request id is required"), http.StatusBadRequest)
		return
	}

	rc := helpers.GetRequestContext(req)

	descriptions, err := dispatcher.Dispatch(req.Context(), requestType, id, rc)
	if err != nil {
		writeServiceError(w, req, fmt.Errorf("error describing payment methods: [%w]", err), log.Data{"request_id": id, "request_type": requestType, "correlation_id": rc.CorrelationID})
		return
	}

	utils.WriteJSONWithStatus(w, req, descriptions, http.StatusOK)
}
