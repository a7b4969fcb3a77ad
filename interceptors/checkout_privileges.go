package interceptors

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
)

// CheckoutPrivilege is the API key privilege that grants access to checkout resources
const CheckoutPrivilege = "checkout"

// Oauth2OrCheckoutPrivilegesIntercept checks that the caller is an Oauth2 user or an
// API key with the checkout privilege or elevated privileges
func Oauth2OrCheckoutPrivilegesIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityType := authentication.GetAuthorisedIdentityType(r)
		if !(identityType == authentication.Oauth2IdentityType || identityType == authentication.APIKeyIdentityType) {
			log.ErrorR(r, fmt.Errorf("checkout privileges interceptor unauthorised: not oauth2 or API key identity type"), log.Data{"identity_type_used": identityType})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if identityType == authentication.Oauth2IdentityType {
			if authentication.GetAuthorisedIdentity(r) == "" {
				log.ErrorR(r, fmt.Errorf("checkout privileges interceptor unauthorised: no authorised identity"))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if authentication.IsKeyElevatedPrivilegesAuthorised(r) || authentication.CheckAuthorisedKeyHasPrivilege(r, CheckoutPrivilege) {
			next.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusUnauthorized)
		log.ErrorR(r, fmt.Errorf("checkout privileges interceptor unauthorised: API key has no checkout privilege"))
	})
}
