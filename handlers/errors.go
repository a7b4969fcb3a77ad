package handlers

import (
	"net/http"

	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/companieshouse/checkout.api.ch.gov.uk/utils"
	"github.com/companieshouse/chs.go/log"
)

// writeServiceError logs err and writes the status and message for its kind.
// Downstream and internal failures get a fixed message.
func writeServiceError(w http.ResponseWriter, req *http.Request, err error, data log.Data) {
	responseType := service.GetResponseType(err)
	if data == nil {
		data = log.Data{}
	}
	data["service_response_type"] = responseType.String()
	data["error_kind"] = service.ErrorKind(err)
	log.ErrorR(req, err, data)

	var status int
	message := err.Error()
	switch responseType {
	case service.InvalidData:
		status = http.StatusBadRequest
	case service.NotFound:
		status = http.StatusNotFound
	case service.Conflict:
		status = http.StatusConflict
	case service.TerminalFailure:
		status = http.StatusUnprocessableEntity
	case service.BadGateway:
		status = http.StatusBadGateway
		message = "a downstream service returned an invalid response"
	case service.Unavailable:
		status = http.StatusServiceUnavailable
		message = "a downstream service is unavailable, please retry"
	default:
		status = http.StatusInternalServerError
		message = "there was a problem handling your request"
	}

	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(message), status)
}
