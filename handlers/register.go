package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/interceptors"
	"github.com/companieshouse/checkout.api.ch.gov.uk/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var challengeService *service.ChallengeService
var dispatcher *service.Dispatcher

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config, d dao.DAO) error {
	httpClient := &http.Client{Timeout: time.Duration(cfg.DownstreamTimeoutInSeconds) * time.Second}

	var outcomes service.ChallengeOutcomeProducer
	if len(cfg.BrokerAddr) > 0 && cfg.SchemaRegistryURL != "" {
		outcomes = &service.KafkaChallengeOutcomeProducer{
			BrokerAddr:        cfg.BrokerAddr,
			SchemaRegistryURL: cfg.SchemaRegistryURL,
		}
	} else {
		log.Info("no kafka configuration supplied, challenge outcomes will not be published")
	}

	provider := service.NewThreeDSProviderClient(cfg.ThreeDSProviderURL, cfg.ThreeDSProviderBearerToken, httpClient)

	var err error
	challengeService, err = service.NewChallengeService(d, provider, outcomes, cfg)
	if err != nil {
		return fmt.Errorf("error creating challenge service: [%w]", err)
	}

	partnerSettings, err := service.NewStaticPartnerSettings(cfg.PartnerComponentSettings)
	if err != nil {
		return fmt.Errorf("error reading partner component settings: [%w]", err)
	}

	dispatcher = &service.Dispatcher{
		Orchestrator:    service.NewPaymentOrchestratorClient(cfg.OrchestratorURL, httpClient),
		PartnerSettings: partnerSettings,
		StateMachine:    &service.StateMachine{Sessions: challengeService},
	}

	ps := &interceptors.PaymentSessionInterceptor{
		Sessions: challengeService,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// authenticate and notify load the session themselves under the authenticate claim,
	// only reads go through the payment session interceptor
	paymentSessionsRouter := mainRouter.PathPrefix("/paymentSessions").Subrouter()
	paymentSessionsRouter.HandleFunc("", HandleCreatePaymentSession).Methods("POST").Name("create-payment-session")
	paymentSessionsRouter.HandleFunc("/{payment_session_id}/authenticate", HandleAuthenticate).Methods("POST").Name("authenticate")
	paymentSessionsRouter.HandleFunc("/{payment_session_id}/notifyThreeDSChallengeCompleted", HandleNotifyChallengeCompleted).Methods("POST").Name("notify-challenge-completed")

	getPaymentSessionRouter := paymentSessionsRouter.PathPrefix("/{payment_session_id}").Subrouter()
	getPaymentSessionRouter.HandleFunc("", HandleGetPaymentSession).Methods("GET").Name("get-payment-session")

	checkoutRouter := mainRouter.PathPrefix("/checkouts/{request_id}/paymentMethodDescriptions").Subrouter()
	checkoutRouter.HandleFunc("", HandleGetCheckoutDescriptions).Methods("GET").Name("get-checkout-descriptions")

	paymentRequestRouter := mainRouter.PathPrefix("/paymentRequests/{request_id}/paymentMethodDescriptions").Subrouter()
	paymentRequestRouter.HandleFunc("", HandleGetPaymentRequestDescriptions).Methods("GET").Name("get-payment-request-descriptions")

	// Set middleware for subrouters
	paymentSessionsRouter.Use(log.Handler, interceptors.CorrelationIDIntercept, interceptors.Oauth2OrCheckoutPrivilegesIntercept)
	getPaymentSessionRouter.Use(ps.PaymentSessionIntercept)
	checkoutRouter.Use(log.Handler, interceptors.CorrelationIDIntercept, interceptors.Oauth2OrCheckoutPrivilegesIntercept)
	paymentRequestRouter.Use(log.Handler, interceptors.CorrelationIDIntercept, interceptors.Oauth2OrCheckoutPrivilegesIntercept)

	return nil
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
