package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/fixtures"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	. "github.com/smartystreets/goconvey/convey"
)

func setUpChallengeService(mockCtrl *gomock.Controller) (*dao.MockDAO, *service.MockThreeDSProvider) {
	mockDAO := dao.NewMockDAO(mockCtrl)
	mockProvider := service.NewMockThreeDSProvider(mockCtrl)
	challengeService = &service.ChallengeService{
		DAO:      mockDAO,
		Provider: mockProvider,
		Config:   *config.DefaultConfig(),
	}
	return mockDAO, mockProvider
}

func jsonBody(v interface{}) *bytes.Reader {
	body, _ := json.Marshal(v)
	return bytes.NewReader(body)
}

func sessionRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, jsonBody(body))
	}
	return mux.SetURLVars(req, map[string]string{"payment_session_id": fixtures.PaymentSessionID})
}

func TestUnitHandleCreatePaymentSession(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Request Body Empty", t, func() {
		setUpChallengeService(mockCtrl)
		req := httptest.NewRequest("POST", "/paymentSessions", nil)
		w := httptest.NewRecorder()
		HandleCreatePaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request Body Invalid", t, func() {
		setUpChallengeService(mockCtrl)
		req := httptest.NewRequest("POST", "/paymentSessions", bytes.NewReader([]byte(`{"amount":`)))
		w := httptest.NewRecorder()
		HandleCreatePaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request fails validation", t, func() {
		setUpChallengeService(mockCtrl)
		incoming := fixtures.GetIncomingPaymentSessionRequest()
		incoming.Currency = ""
		req := httptest.NewRequest("POST", "/paymentSessions", jsonBody(incoming))
		w := httptest.NewRecorder()
		HandleCreatePaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error saving payment session", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any()).Return(errors.New("error"))

		req := httptest.NewRequest("POST", "/paymentSessions", jsonBody(fixtures.GetIncomingPaymentSessionRequest()))
		w := httptest.NewRecorder()
		HandleCreatePaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Body.String(), ShouldContainSubstring, "there was a problem handling your request")
	})

	Convey("Payment session created", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest("POST", "/paymentSessions", jsonBody(fixtures.GetIncomingPaymentSessionRequest()))
		w := httptest.NewRecorder()
		HandleCreatePaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusCreated)

		var created models.PaymentSessionRest
		So(json.Unmarshal(w.Body.Bytes(), &created), ShouldBeNil)
		So(created.ID, ShouldNotBeEmpty)
		So(created.ChallengeStatus, ShouldEqual, models.ChallengeStatusUnknown)
		So(w.Header().Get("Location"), ShouldEqual, "/paymentSessions/"+created.ID)
	})
}

func TestUnitHandleGetPaymentSession(t *testing.T) {
	Convey("No payment session in context", t, func() {
		req := httptest.NewRequest("GET", "/paymentSessions/1234", nil)
		w := httptest.NewRecorder()
		HandleGetPaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Payment session in context is returned", t, func() {
		session := &models.PaymentSessionRest{ID: "1234", ChallengeStatus: models.ChallengeStatusChallenge}
		req := httptest.NewRequest("GET", "/paymentSessions/1234", nil)
		req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyPaymentSession, session))
		w := httptest.NewRecorder()
		HandleGetPaymentSession(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"challenge_status":"Challenge"`)
	})
}

func TestUnitHandleAuthenticate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	path := "/paymentSessions/" + fixtures.PaymentSessionID + "/authenticate"

	Convey("No payment session id", t, func() {
		setUpChallengeService(mockCtrl)
		req := httptest.NewRequest("POST", path, jsonBody(fixtures.GetBrowserAuthenticateRequest()))
		w := httptest.NewRecorder()
		HandleAuthenticate(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request Body Empty", t, func() {
		setUpChallengeService(mockCtrl)
		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, nil))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Neither browser nor sdk info", t, func() {
		setUpChallengeService(mockCtrl)
		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, models.IncomingAuthenticateRequest{}))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unknown payment session", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(nil, nil)
		mockDAO.EXPECT().GetPaymentSession(gomock.Any(), fixtures.PaymentSessionID).Return(nil, nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Authentication already in flight", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(nil, nil)
		mockDAO.EXPECT().GetPaymentSession(gomock.Any(), fixtures.PaymentSessionID).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusUnknown), nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusConflict)
	})

	Convey("Challenge failed previously", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusFailed), nil)
		mockDAO.EXPECT().ReleaseAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
	})

	Convey("3DS provider unavailable", t, func() {
		mockDAO, mockProvider := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusUnknown), nil)
		mockProvider.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, &service.TransientServiceError{Downstream: "3DS provider", StatusCode: 503, Err: errors.New("unavailable")})
		mockDAO.EXPECT().ReleaseAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		So(w.Body.String(), ShouldContainSubstring, "please retry")
	})

	Convey("3DS provider returns an invalid result", t, func() {
		mockDAO, mockProvider := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusUnknown), nil)
		mockProvider.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(&models.AuthenticationResult{TransStatus: "C"}, nil)
		mockDAO.EXPECT().ReleaseAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusBadGateway)
	})

	Convey("Challenge issued", t, func() {
		mockDAO, mockProvider := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().ClaimAuthentication(gomock.Any(), fixtures.PaymentSessionID, gomock.Any(), gomock.Any()).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusUnknown), nil)
		mockProvider.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(fixtures.GetChallengeAuthenticationResult(), nil)
		mockDAO.EXPECT().UpdatePaymentSession(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		HandleAuthenticate(w, sessionRequest("POST", path, fixtures.GetBrowserAuthenticateRequest()))
		So(w.Code, ShouldEqual, http.StatusOK)

		var response models.AuthenticateResponse
		So(json.Unmarshal(w.Body.Bytes(), &response), ShouldBeNil)
		So(response.ChallengeStatus, ShouldEqual, models.ChallengeStatusChallenge)
		So(response.ThreeDSServerTransactionID, ShouldEqual, fixtures.ThreeDSServerTransID)
		So(response.AcsURL, ShouldEqual, "https://acs.example.com/challenge")
	})
}

func TestUnitHandleNotifyChallengeCompleted(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	path := "/paymentSessions/" + fixtures.PaymentSessionID + "/notifyThreeDSChallengeCompleted"

	Convey("No payment session id", t, func() {
		setUpChallengeService(mockCtrl)
		req := httptest.NewRequest("POST", path, jsonBody(models.IncomingNotifyChallengeCompletedRequest{ThreeDSServerTransactionID: fixtures.ThreeDSServerTransID}))
		w := httptest.NewRecorder()
		HandleNotifyChallengeCompleted(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request Body Empty", t, func() {
		setUpChallengeService(mockCtrl)
		w := httptest.NewRecorder()
		HandleNotifyChallengeCompleted(w, sessionRequest("POST", path, nil))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unknown payment session", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().GetPaymentSession(gomock.Any(), fixtures.PaymentSessionID).Return(nil, nil)

		w := httptest.NewRecorder()
		HandleNotifyChallengeCompleted(w, sessionRequest("POST", path, models.IncomingNotifyChallengeCompletedRequest{ThreeDSServerTransactionID: fixtures.ThreeDSServerTransID}))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Transaction id does not match the session", t, func() {
		mockDAO, _ := setUpChallengeService(mockCtrl)
		mockDAO.EXPECT().GetPaymentSession(gomock.Any(), fixtures.PaymentSessionID).Return(fixtures.GetPaymentSessionDB(models.ChallengeStatusChallenge), nil)

		w := httptest.NewRecorder()
		HandleNotifyChallengeCompleted(w, sessionRequest("POST", path, models.IncomingNotifyChallengeCompletedRequest{ThreeDSServerTransactionID: "other"}))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Challenge completed successfully", t, func() {
		mockDAO, mockProvider := setUpChallengeService(mockCtrl)
		session := fixtures.GetPaymentSessionDB(models.ChallengeStatusChallenge)
		mockDAO.EXPECT().GetPaymentSession(gomock.Any(), fixtures.PaymentSessionID).Return(session, nil)
		mockProvider.EXPECT().GetChallengeResult(gomock.Any(), fixtures.ThreeDSServerTransID).Return(&models.ChallengeResult{ThreeDSServerTransID: fixtures.ThreeDSServerTransID, TransStatus: "Y"}, nil)
		mockDAO.EXPECT().UpdatePaymentSession(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		HandleNotifyChallengeCompleted(w, sessionRequest("POST", path, models.IncomingNotifyChallengeCompletedRequest{ThreeDSServerTransactionID: fixtures.ThreeDSServerTransID}))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"challenge_status":"Succeeded"`)
	})
}
