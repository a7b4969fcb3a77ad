package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/dao"
	"github.com/companieshouse/checkout.api.ch.gov.uk/helpers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/mappers"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/checkout.api.ch.gov.uk/transformers"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoThreeDSProvider is returned when a ChallengeService is built without a 3DS provider
var ErrNoThreeDSProvider = errors.New("no 3DS provider configured")

const (
	paymentSessionResource = "payment session"
	defaultClaimTTL        = 30 * time.Second

	messageCategoryPayment    = "01"
	messageCategoryNonPayment = "02"

	challengeIndNoPreference     = "01"
	challengeIndChallengeMandate = "04"
)

// currencies whose minor unit is the major unit
var zeroExponentCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"CLP": true,
	"ISK": true,
}

var validate = validator.New()

// ChallengeService drives the 3DS challenge protocol of payment sessions
type ChallengeService struct {
	DAO      dao.DAO
	Provider ThreeDSProvider
	Outcomes ChallengeOutcomeProducer
	Config   config.Config
	Now      func() time.Time
}

// NewChallengeService returns a ChallengeService. A 3DS provider is required.
func NewChallengeService(d dao.DAO, provider ThreeDSProvider, outcomes ChallengeOutcomeProducer, cfg config.Config) (*ChallengeService, error) {
	if provider == nil {
		return nil, ErrNoThreeDSProvider
	}
	if d == nil {
		return nil, errors.New("no payment session store configured")
	}
	return &ChallengeService{
		DAO:      d,
		Provider: provider,
		Outcomes: outcomes,
		Config:   cfg,
	}, nil
}

func (service *ChallengeService) now() time.Time {
	if service.Now != nil {
		return service.Now()
	}
	// To match the format time is saved to mongo, truncate the time
	return time.Now().Truncate(time.Millisecond)
}

func (service *ChallengeService) downstreamTimeout() time.Duration {
	if service.Config.DownstreamTimeoutInSeconds <= 0 {
		return 0
	}
	return time.Duration(service.Config.DownstreamTimeoutInSeconds) * time.Second
}

// claimTTL is how long an authenticate claim is honoured before another
// request may take it over
func (service *ChallengeService) claimTTL() time.Duration {
	if timeout := service.downstreamTimeout(); timeout > 0 {
		return 3 * timeout
	}
	return defaultClaimTTL
}

func (service *ChallengeService) downstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := service.downstreamTimeout(); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// CreatePaymentSession stores a new payment session in status Unknown
func (service *ChallengeService) CreatePaymentSession(ctx context.Context, req models.IncomingPaymentSessionRequest) (*models.PaymentSessionRest, error) {
	session, err := service.newPaymentSession(uuid.NewString(), req)
	if err != nil {
		return nil, err
	}

	if err = service.DAO.CreatePaymentSession(ctx, session); err != nil {
		return nil, fmt.Errorf("error writing payment session to MongoDB: [%w]", err)
	}

	log.Info("payment session created", log.Data{
		"payment_session_id": session.ID,
		"correlation_id":     helpers.GetCorrelationID(ctx),
	})

	rest := transformers.PaymentSessionTransformer{}.TransformToRest(*session)
	return &rest, nil
}

// EnsurePaymentSession returns the payment session stored under id, creating
// it from req first if there is none
func (service *ChallengeService) EnsurePaymentSession(ctx context.Context, id string, req models.IncomingPaymentSessionRequest) (*models.PaymentSessionRest, error) {
	session, err := service.newPaymentSession(id, req)
	if err != nil {
		return nil, err
	}

	stored, err := service.DAO.FindOrCreatePaymentSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("error writing payment session to MongoDB: [%w]", err)
	}

	log.Info("payment session ensured", log.Data{
		"payment_session_id": stored.ID,
		"challenge_status":   stored.Data.ChallengeStatus,
		"correlation_id":     helpers.GetCorrelationID(ctx),
	})

	rest := transformers.PaymentSessionTransformer{}.TransformToRest(*stored)
	return &rest, nil
}

func (service *ChallengeService) newPaymentSession(id string, req models.IncomingPaymentSessionRequest) (*models.PaymentSessionDB, error) {
	if err := validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: "invalid payment session request", Err: err}
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, &ValidationError{Message: "invalid amount", Err: err}
	}
	if !amount.IsPositive() {
		return nil, &ValidationError{Message: fmt.Sprintf("amount must be greater than zero, got [%s]", req.Amount)}
	}

	scenario := req.ChallengeScenario
	if scenario == "" {
		scenario = models.ScenarioPaymentTransaction
	}
	windowSize := req.ChallengeWindowSize
	if windowSize == "" {
		windowSize = models.DefaultChallengeWindowSize
	}

	now := service.now()
	return &models.PaymentSessionDB{
		ID: id,
		Data: models.PaymentSessionDataDB{
			Amount:              amount.String(),
			Currency:            req.Currency,
			Country:             req.Country,
			Language:            req.Language,
			IsMOTO:              req.IsMOTO,
			PaymentInstrumentID: req.PaymentInstrumentID,
			ChallengeStatus:     models.ChallengeStatusUnknown,
			ChallengeScenario:   scenario,
			ChallengeWindowSize: windowSize,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}, nil
}

// GetPaymentSession returns the payment session with the given id
func (service *ChallengeService) GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionRest, error) {
	session, err := service.DAO.GetPaymentSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reading payment session from MongoDB: [%w]", err)
	}
	if session == nil {
		return nil, &NotFoundError{Resource: paymentSessionResource, ID: id}
	}

	rest := transformers.PaymentSessionTransformer{}.TransformToRest(*session)
	return &rest, nil
}

// Authenticate sends the AReq for the payment session to the 3DS provider.
// Only one authenticate may be in flight per session; a concurrent call gets a ConflictError.
func (service *ChallengeService) Authenticate(ctx context.Context, id string, req models.IncomingAuthenticateRequest) (*models.AuthenticateResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: "invalid authenticate request", Err: err}
	}

	now := service.now()
	session, err := service.DAO.ClaimAuthentication(ctx, id, now, now.Add(-service.claimTTL()))
	if err != nil {
		return nil, fmt.Errorf("error claiming payment session in MongoDB: [%w]", err)
	}

	if session == nil {
		existing, err := service.DAO.GetPaymentSession(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("error reading payment session from MongoDB: [%w]", err)
		}
		if existing == nil {
			return nil, &NotFoundError{Resource: paymentSessionResource, ID: id}
		}
		return nil, &ConflictError{Resource: paymentSessionResource, ID: id, Message: "authentication already in progress"}
	}

	response, err := service.authenticateClaimed(ctx, session, req, now)
	if err != nil {
		// the claim made at now is released even if the caller has gone away
		if releaseErr := service.DAO.ReleaseAuthentication(context.WithoutCancel(ctx), id, now); releaseErr != nil {
			log.Error(fmt.Errorf("error releasing payment session: [%w]", releaseErr), log.Data{"payment_session_id": id})
		}
		return nil, err
	}

	return response, nil
}

func (service *ChallengeService) authenticateClaimed(ctx context.Context, session *models.PaymentSessionDB, req models.IncomingAuthenticateRequest, now time.Time) (*models.AuthenticateResponse, error) {
	status := session.Data.ChallengeStatus

	if status.IsTerminal() {
		if status.IsSuccess() {
			// nothing left to authenticate, release and report the outcome
			session.AuthenticateInFlight = false
			session.InFlightSince = nil
			if err := service.save(ctx, session); err != nil {
				return nil, err
			}
			return &models.AuthenticateResponse{
				ThreeDSServerTransactionID: session.ThreeDS.ServerTransactionID,
				ChallengeStatus:            status,
			}, nil
		}
		return nil, &TerminalChallengeFailure{PaymentSessionID: session.ID, Status: status, Reason: mappers.DescribeTransStatusReason(session.ThreeDS.TransStatusReason)}
	}

	if status == models.ChallengeStatusChallenge && session.Attempts.ChallengeAttempts >= service.Config.MaxChallengeAttempts {
		if err := service.complete(ctx, session, models.ChallengeStatusFailed, now); err != nil {
			return nil, err
		}
		return nil, &TerminalChallengeFailure{PaymentSessionID: session.ID, Status: models.ChallengeStatusFailed, Reason: "challenge attempts exhausted"}
	}

	areq, err := buildAuthenticationRequest(session, req)
	if err != nil {
		return nil, err
	}

	providerCtx, cancel := service.downstreamContext(ctx)
	defer cancel()

	result, err := service.Provider.Authenticate(providerCtx, areq)
	if err != nil {
		return nil, err
	}
	if result == nil || result.ThreeDSServerTransID == "" {
		return nil, &IntegrationError{
			Downstream:    threeDSProviderName,
			CorrelationID: helpers.GetCorrelationID(ctx),
			Err:           errors.New("authentication result has no 3DS server transaction id"),
		}
	}

	next := nextAuthenticateStatus(status, mappers.MapAuthenticationStatus(result.TransStatus))

	log.Info("authentication result received", log.Data{
		"payment_session_id": session.ID,
		"trans_status":       result.TransStatus,
		"challenge_status":   next,
		"correlation_id":     helpers.GetCorrelationID(ctx),
	})

	session.ThreeDS = models.ThreeDSDataDB{
		ServerTransactionID:    result.ThreeDSServerTransID,
		AcsTransactionID:       result.AcsTransID,
		AcsURL:                 result.AcsURL,
		AcsSignedContent:       result.AcsSignedContent,
		ChallengeRequest:       result.ChallengeRequest,
		RiskChallengeIndicator: result.RiskChallengeIndicator,
		MessageVersion:         result.MessageVersion,
		AuthenticationValue:    result.AuthenticationValue,
		ECI:                    result.ECI,
		TransStatus:            result.TransStatus,
		TransStatusReason:      result.TransStatusReason,
	}
	if session.ThreeDS.MessageVersion == "" {
		session.ThreeDS.MessageVersion = areq.MessageVersion
	}

	if next == models.ChallengeStatusChallenge {
		issuedAt := now
		session.Attempts.ChallengeAttempts++
		session.Attempts.ValidationAttempts = 0
		session.Attempts.ChallengeIssuedAt = &issuedAt
	}

	if err = service.complete(ctx, session, next, now); err != nil {
		return nil, err
	}

	response := &models.AuthenticateResponse{
		ThreeDSServerTransactionID: result.ThreeDSServerTransID,
		ChallengeStatus:            next,
	}
	if next == models.ChallengeStatusChallenge {
		response.AcsURL = result.AcsURL
		response.AcsTransactionID = result.AcsTransID
		response.AcsSignedContent = result.AcsSignedContent
		response.ChallengeRequest = result.ChallengeRequest
	}
	return response, nil
}

// NotifyChallengeCompleted is called once the client's ACS round trip has
// finished. The ACS result is fetched from the provider and mapped onto the session.
func (service *ChallengeService) NotifyChallengeCompleted(ctx context.Context, id string, req models.IncomingNotifyChallengeCompletedRequest) (*models.PaymentSessionRest, error) {
	if err := validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: "invalid challenge completed request", Err: err}
	}

	session, err := service.DAO.GetPaymentSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reading payment session from MongoDB: [%w]", err)
	}
	if session == nil {
		return nil, &NotFoundError{Resource: paymentSessionResource, ID: id}
	}

	transformer := transformers.PaymentSessionTransformer{}
	status := session.Data.ChallengeStatus

	// no AReq has been sent yet, so there is nothing to resolve
	if session.ThreeDS.ServerTransactionID == "" {
		log.Info("challenge completed before authentication", log.Data{"payment_session_id": id})
		rest := transformer.TransformToRest(*session)
		return &rest, nil
	}

	if session.ThreeDS.ServerTransactionID != req.ThreeDSServerTransactionID {
		return nil, &ValidationError{Message: fmt.Sprintf("3DS server transaction id [%s] does not match payment session [%s]", req.ThreeDSServerTransactionID, id)}
	}

	// an RRes without a resolving transStatus issued no challenge
	if status == models.ChallengeStatusUnknown || status.IsTerminal() {
		rest := transformer.TransformToRest(*session)
		return &rest, nil
	}

	now := service.now()

	if service.challengeExpired(session, now) {
		if err = service.complete(ctx, session, models.ChallengeStatusTimedOut, now); err != nil {
			return nil, err
		}
		rest := transformer.TransformToRest(*session)
		return &rest, nil
	}

	if session.Attempts.ValidationAttempts >= service.Config.MaxValidationAttempts {
		return nil, &ValidationError{Message: "validation attempts exhausted, a new challenge is required"}
	}

	providerCtx, cancel := service.downstreamContext(ctx)
	defer cancel()

	result, err := service.Provider.GetChallengeResult(providerCtx, req.ThreeDSServerTransactionID)
	if err != nil {
		return nil, err
	}

	outcome := mappers.MapChallengeResult(result)

	log.Info("challenge result received", log.Data{
		"payment_session_id":  id,
		"trans_status":        outcome.TransStatus,
		"trans_status_reason": outcome.TransStatusReason,
		"reason_category":     outcome.ReasonCategory,
		"resolved":            outcome.Resolved,
		"correlation_id":      helpers.GetCorrelationID(ctx),
	})

	next := status
	if outcome.Resolved {
		next = outcome.Status
		session.ThreeDS.TransStatus = outcome.TransStatus
		session.ThreeDS.TransStatusReason = outcome.TransStatusReason
		session.ThreeDS.ChallengeCancel = result.ChallengeCancel
		session.ThreeDS.AuthenticationValue = result.AuthenticationValue
		session.ThreeDS.ECI = result.ECI
	} else {
		session.Attempts.ValidationAttempts++
	}

	if err = service.complete(ctx, session, next, now); err != nil {
		return nil, err
	}

	rest := transformer.TransformToRest(*session)
	return &rest, nil
}

func (service *ChallengeService) challengeExpired(session *models.PaymentSessionDB, now time.Time) bool {
	if service.Config.ChallengeTimeoutInMinutes <= 0 || session.Attempts.ChallengeIssuedAt == nil {
		return false
	}
	timeout := time.Duration(service.Config.ChallengeTimeoutInMinutes) * time.Minute
	return now.After(session.Attempts.ChallengeIssuedAt.Add(timeout))
}

// complete moves the session to next, clears the authenticate claim and
// persists it. Terminal outcomes are published.
func (service *ChallengeService) complete(ctx context.Context, session *models.PaymentSessionDB, next models.ChallengeStatus, now time.Time) error {
	current := session.Data.ChallengeStatus
	if next != current && !current.CanTransitionTo(next) {
		return fmt.Errorf("invalid challenge status transition from [%s] to [%s]", current, next)
	}

	session.Data.ChallengeStatus = next
	session.Data.UpdatedAt = now
	session.AuthenticateInFlight = false
	session.InFlightSince = nil

	if err := service.save(ctx, session); err != nil {
		return err
	}

	if next != current && next.IsTerminal() {
		service.publish(ctx, session)
	}
	return nil
}

func (service *ChallengeService) save(ctx context.Context, session *models.PaymentSessionDB) error {
	err := service.DAO.UpdatePaymentSession(ctx, session)
	if errors.Is(err, dao.ErrVersionConflict) {
		return &ConflictError{Resource: paymentSessionResource, ID: session.ID, Message: "modified by another request"}
	}
	if err != nil {
		return fmt.Errorf("error updating payment session in MongoDB: [%w]", err)
	}
	return nil
}

// publish sends the outcome of a terminal session. The session is already
// stored, so a failure is logged and not returned.
func (service *ChallengeService) publish(ctx context.Context, session *models.PaymentSessionDB) {
	if service.Outcomes == nil {
		return
	}
	if err := service.Outcomes.Publish(ctx, session); err != nil {
		log.Error(fmt.Errorf("error publishing challenge outcome: [%w]", err), log.Data{"payment_session_id": session.ID})
	}
}

// nextAuthenticateStatus returns the status a session in current moves to
// after an RRes mapped to mapped. A result without a resolving signal leaves
// the session where it is, and a repeat authenticate of a pending challenge
// resolves it as a challenge outcome.
func nextAuthenticateStatus(current, mapped models.ChallengeStatus) models.ChallengeStatus {
	if mapped == models.ChallengeStatusUnknown {
		return current
	}
	if current == models.ChallengeStatusChallenge {
		switch mapped {
		case models.ChallengeStatusApproved:
			return models.ChallengeStatusSucceeded
		case models.ChallengeStatusDeclined:
			return models.ChallengeStatusFailed
		}
	}
	return mapped
}

func buildAuthenticationRequest(session *models.PaymentSessionDB, req models.IncomingAuthenticateRequest) (*models.AuthenticationRequest, error) {
	amount, err := decimal.NewFromString(session.Data.Amount)
	if err != nil {
		return nil, fmt.Errorf("stored amount [%s] is invalid: [%w]", session.Data.Amount, err)
	}

	exponent := currencyExponent(session.Data.Currency)

	areq := &models.AuthenticationRequest{
		PaymentSessionID:             session.ID,
		MessageVersion:               models.DefaultThreeDSMessageVersion,
		MessageCategory:              messageCategoryPayment,
		ChallengeScenario:            session.Data.ChallengeScenario,
		ChallengeWindowSize:          session.Data.ChallengeWindowSize,
		PurchaseAmount:               amount.Shift(exponent).Round(0).IntPart(),
		PurchaseCurrency:             session.Data.Currency,
		PurchaseExponent:             exponent,
		MerchantCountryCode:          session.Data.Country,
		PaymentInstrumentID:          session.Data.PaymentInstrumentID,
		IsMOTO:                       session.Data.IsMOTO,
		ThreeDSRequestorChallengeInd: challengeIndNoPreference,
	}

	if session.Data.ChallengeScenario == models.ScenarioAddCard {
		areq.MessageCategory = messageCategoryNonPayment
		areq.ThreeDSRequestorChallengeInd = challengeIndChallengeMandate
	}

	if req.SDKInfo != nil {
		areq.DeviceChannel = models.DeviceChannelApp
		areq.SDKInfo = req.SDKInfo
	} else {
		areq.DeviceChannel = models.DeviceChannelBrowser
		areq.BrowserInfo = req.BrowserInfo
	}

	return areq, nil
}

func currencyExponent(currency string) int32 {
	if zeroExponentCurrencies[currency] {
		return 0
	}
	return 2
}
