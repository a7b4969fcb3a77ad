package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/companieshouse/chs.go/authentication"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitOauth2OrCheckoutPrivilegesIntercept(t *testing.T) {
	Convey("No identity type", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Oauth2 without identity", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("ERIC-Identity-Type", authentication.Oauth2IdentityType)
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Oauth2 user", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("ERIC-Identity-Type", authentication.Oauth2IdentityType)
		req.Header.Set("ERIC-Identity", "user-1")
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("API Key not authorised", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("ERIC-Identity-Type", authentication.APIKeyIdentityType)
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("API Key with elevated privileges", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("ERIC-Identity-Type", authentication.APIKeyIdentityType)
		req.Header.Set("ERIC-Authorised-Key-Roles", "*")
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("API Key with checkout privilege", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("ERIC-Identity-Type", authentication.APIKeyIdentityType)
		req.Header.Set("ERIC-Authorised-Key-Privileges", CheckoutPrivilege)
		w := httptest.NewRecorder()

		Oauth2OrCheckoutPrivilegesIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
