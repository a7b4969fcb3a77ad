package interceptors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	. "github.com/smartystreets/goconvey/convey"
)

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

func TestUnitPaymentSessionIntercept(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("No payment session ID in request", t, func() {
		mockSessions := service.NewMockChallengeSessionProvider(mockCtrl)
		interceptor := PaymentSessionInterceptor{Sessions: mockSessions}

		req := httptest.NewRequest("GET", "/paymentSessions/", nil)
		w := httptest.NewRecorder()
		interceptor.PaymentSessionIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Payment session not found", t, func() {
		mockSessions := service.NewMockChallengeSessionProvider(mockCtrl)
		mockSessions.EXPECT().GetPaymentSession(gomock.Any(), "1234").Return(nil, &service.NotFoundError{Resource: "payment session", ID: "1234"})
		interceptor := PaymentSessionInterceptor{Sessions: mockSessions}

		req := httptest.NewRequest("GET", "/paymentSessions/1234", nil)
		req = mux.SetURLVars(req, map[string]string{PaymentSessionIDVar: "1234"})
		w := httptest.NewRecorder()
		interceptor.PaymentSessionIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Error retrieving payment session", t, func() {
		mockSessions := service.NewMockChallengeSessionProvider(mockCtrl)
		mockSessions.EXPECT().GetPaymentSession(gomock.Any(), "1234").Return(nil, errors.New("error"))
		interceptor := PaymentSessionInterceptor{Sessions: mockSessions}

		req := httptest.NewRequest("GET", "/paymentSessions/1234", nil)
		req = mux.SetURLVars(req, map[string]string{PaymentSessionIDVar: "1234"})
		w := httptest.NewRecorder()
		interceptor.PaymentSessionIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Payment session is stored in the request context", t, func() {
		session := &models.PaymentSessionRest{ID: "1234", ChallengeStatus: models.ChallengeStatusChallenge}
		mockSessions := service.NewMockChallengeSessionProvider(mockCtrl)
		mockSessions.EXPECT().GetPaymentSession(gomock.Any(), "1234").Return(session, nil)
		interceptor := PaymentSessionInterceptor{Sessions: mockSessions}

		var stored *models.PaymentSessionRest
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			stored, _ = r.Context().Value(helpers.ContextKeyPaymentSession).(*models.PaymentSessionRest)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/paymentSessions/1234", nil)
		req = mux.SetURLVars(req, map[string]string{PaymentSessionIDVar: "1234"})
		w := httptest.NewRecorder()
		interceptor.PaymentSessionIntercept(next).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(stored, ShouldEqual, session)
	})
}

func TestUnitCorrelationIDIntercept(t *testing.T) {
	Convey("Caller correlation id is carried and echoed", t, func() {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = helpers.GetCorrelationID(r.Context())
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(helpers.CorrelationIDHeader, "corr-1")
		w := httptest.NewRecorder()
		CorrelationIDIntercept(next).ServeHTTP(w, req)
		So(seen, ShouldEqual, "corr-1")
		So(w.Header().Get(helpers.CorrelationIDHeader), ShouldEqual, "corr-1")
	})

	Convey("Missing correlation id is generated", t, func() {
		var seen string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = helpers.GetCorrelationID(r.Context())
		})

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		CorrelationIDIntercept(next).ServeHTTP(w, req)
		So(seen, ShouldNotBeEmpty)
		So(w.Header().Get(helpers.CorrelationIDHeader), ShouldEqual, seen)
	})
}
