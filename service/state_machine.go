package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

var challengeSessionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("checkout.api.ch.gov.uk/payment-sessions"))

// PaymentMethodGroup is the set of standard payment methods of one family
type PaymentMethodGroup struct {
	Family            string
	Types             []string
	SubmissionOrderID string
	Methods           []models.PaymentMethod
}

// Resolution is the resolved state of a checkout or payment request and the
// single client action to surface for it
type Resolution struct {
	RequestType           models.RequestType
	RequestID             string
	Status                string
	Country               string
	Language              string
	Actions               []models.ClientAction
	NextAction            *models.ClientAction
	PaymentSession        *models.PaymentSessionRest
	Groups                []PaymentMethodGroup
	QuickPaymentMethods   []models.PaymentMethod
	HasAttachedInstrument bool
	Capabilities          models.RequestCapabilities
}

// StateMachine computes the next client action from an orchestrator snapshot
type StateMachine struct {
	Sessions ChallengeSessionProvider
}

// ResolveCheckout resolves the next client action of a checkout
func (sm *StateMachine) ResolveCheckout(ctx context.Context, snapshot *models.CheckoutRequestClientActions, rc models.RequestContext) (*Resolution, error) {
	if snapshot == nil {
		return nil, &ValidationError{Message: "checkout snapshot is required"}
	}
	if snapshot.CheckoutRequestID == "" {
		return nil, malformedSnapshot(rc, "checkout snapshot has no id")
	}
	if !snapshot.Status.IsValid() {
		return nil, malformedSnapshot(rc, fmt.Sprintf("checkout [%s] has unknown status [%s]", snapshot.CheckoutRequestID, snapshot.Status))
	}

	resolution := newResolution(models.RequestTypeCheckout, snapshot.CheckoutRequestID, string(snapshot.Status), snapshot.OrderDetails, rc)
	if snapshot.Status.IsTerminal() {
		return resolution, nil
	}

	if err := resolveActions(resolution, snapshot.OrderDetails, rc); err != nil {
		return nil, err
	}

	// a challenge can only be surfaced while the checkout is able to wait on it
	if resolution.challengePending() &&
		snapshot.Status != models.CheckoutHandlePaymentChallenge && !snapshot.Status.CanTransitionTo(models.CheckoutHandlePaymentChallenge) {
		return nil, malformedSnapshot(rc, fmt.Sprintf("checkout [%s] in status [%s] cannot handle a payment challenge", snapshot.CheckoutRequestID, snapshot.Status))
	}

	if err := sm.resolveNext(ctx, resolution, snapshot.OrderDetails, rc); err != nil {
		return nil, err
	}
	return resolution, nil
}

// ResolvePaymentRequest resolves the next client action of a standalone payment request
func (sm *StateMachine) ResolvePaymentRequest(ctx context.Context, snapshot *models.PaymentRequestClientActions, rc models.RequestContext) (*Resolution, error) {
	if snapshot == nil {
		return nil, &ValidationError{Message: "payment request snapshot is required"}
	}
	if snapshot.PaymentRequestID == "" {
		return nil, malformedSnapshot(rc, "payment request snapshot has no id")
	}
	if !snapshot.Status.IsValid() {
		return nil, malformedSnapshot(rc, fmt.Sprintf("payment request [%s] has unknown status [%s]", snapshot.PaymentRequestID, snapshot.Status))
	}

	resolution := newResolution(models.RequestTypePaymentRequest, snapshot.PaymentRequestID, string(snapshot.Status), snapshot.OrderDetails, rc)
	if snapshot.Status.IsTerminal() {
		return resolution, nil
	}

	if err := resolveActions(resolution, snapshot.OrderDetails, rc); err != nil {
		return nil, err
	}
	if err := sm.resolveNext(ctx, resolution, snapshot.OrderDetails, rc); err != nil {
		return nil, err
	}
	return resolution, nil
}

func newResolution(requestType models.RequestType, id, status string, details models.OrderDetails, rc models.RequestContext) *Resolution {
	resolution := &Resolution{
		RequestType:           requestType,
		RequestID:             id,
		Status:                status,
		Country:               details.Country,
		Language:              details.Language,
		HasAttachedInstrument: len(details.PaymentInstruments) > 0,
		Capabilities:          details.Capabilities,
	}
	if resolution.Country == "" {
		resolution.Country = rc.Country
	}
	if resolution.Language == "" {
		resolution.Language = rc.Language
	}
	return resolution
}

func (r *Resolution) challengePending() bool {
	return r.NextAction != nil && r.NextAction.Type == models.ClientActionHandleChallenge
}

// resolveActions orders the outstanding actions and picks the next one. It
// has no side effects.
func resolveActions(resolution *Resolution, details models.OrderDetails, rc models.RequestContext) error {
	actions, err := orderActions(details.ClientActions, rc)
	if err != nil {
		return err
	}
	resolution.Actions = actions
	if len(actions) == 0 {
		return nil
	}

	next := actions[0]
	resolution.NextAction = &next

	log.Trace("client action resolved", log.Data{
		"request_id":     resolution.RequestID,
		"request_type":   resolution.RequestType,
		"action":         next.Type,
		"outstanding":    len(actions),
		"correlation_id": rc.CorrelationID,
	})
	return nil
}

// resolveNext fills in what the client needs for the next action
func (sm *StateMachine) resolveNext(ctx context.Context, resolution *Resolution, details models.OrderDetails, rc models.RequestContext) error {
	if resolution.NextAction == nil {
		return nil
	}

	if resolution.challengePending() {
		session, err := sm.challengeSession(ctx, resolution, details, rc)
		if err != nil {
			return err
		}
		resolution.PaymentSession = session
		return nil
	}

	return groupPaymentMethods(resolution, details.PaymentMethods, rc)
}

// orderActions returns the outstanding actions with challenges ahead of
// selections, keeping snapshot order within each type
func orderActions(actions []models.ClientAction, rc models.RequestContext) ([]models.ClientAction, error) {
	var challenges, selections []models.ClientAction
	for _, action := range actions {
		switch action.Type {
		case models.ClientActionHandleChallenge:
			challenges = append(challenges, action)
		case models.ClientActionSelectPaymentMethod:
			selections = append(selections, action)
		default:
			return nil, malformedSnapshot(rc, fmt.Sprintf("unknown client action type [%s]", action.Type))
		}
	}
	return append(challenges, selections...), nil
}

// groupPaymentMethods separates quick payment methods and groups the
// remaining methods by family in the order the families are first seen
func groupPaymentMethods(resolution *Resolution, methods []models.PaymentMethod, rc models.RequestContext) error {
	expressAllowed := !rc.IsFlightEnabled(models.FlightDisableExpressCheckout)

	index := map[string]int{}
	for _, method := range methods {
		if method.PaymentMethodFamily == "" || method.PaymentMethodType == "" {
			return malformedSnapshot(rc, fmt.Sprintf("payment method [%s/%s] is incomplete", method.PaymentMethodFamily, method.PaymentMethodType))
		}

		if expressAllowed && method.HasCapability(models.PaymentMethodCapabilityExpressCheckout) {
			resolution.QuickPaymentMethods = append(resolution.QuickPaymentMethods, method)
			continue
		}

		i, ok := index[method.PaymentMethodFamily]
		if !ok {
			i = len(resolution.Groups)
			index[method.PaymentMethodFamily] = i
			resolution.Groups = append(resolution.Groups, PaymentMethodGroup{Family: method.PaymentMethodFamily})
		}

		group := &resolution.Groups[i]
		group.Methods = append(group.Methods, method)
		if !contains(group.Types, method.PaymentMethodType) {
			group.Types = append(group.Types, method.PaymentMethodType)
		}
	}

	for i := range resolution.Groups {
		resolution.Groups[i].SubmissionOrderID = strings.Join(resolution.Groups[i].Types, "_")
	}

	if len(resolution.Groups) == 0 && len(resolution.QuickPaymentMethods) == 0 {
		return malformedSnapshot(rc, fmt.Sprintf("[%s] has no eligible payment methods to select", resolution.RequestID))
	}
	return nil
}

func (sm *StateMachine) challengeSession(ctx context.Context, resolution *Resolution, details models.OrderDetails, rc models.RequestContext) (*models.PaymentSessionRest, error) {
	if sm.Sessions == nil {
		return nil, errors.New("no challenge session provider configured")
	}

	action := *resolution.NextAction
	if action.PaymentSessionID != "" {
		session, err := sm.Sessions.GetPaymentSession(ctx, action.PaymentSessionID)
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return nil, &IntegrationError{
				Downstream:    orchestratorName,
				CorrelationID: rc.CorrelationID,
				Err:           fmt.Errorf("[%s] references payment session [%s]: [%w]", resolution.RequestID, action.PaymentSessionID, err),
			}
		}
		return session, err
	}

	req := models.IncomingPaymentSessionRequest{
		Amount:            details.Amount.String(),
		Currency:          details.Currency,
		Country:           details.Country,
		Language:          details.Language,
		ChallengeScenario: action.ChallengeScenario,
	}
	if req.Country == "" {
		req.Country = rc.Country
	}
	if req.Language == "" {
		req.Language = rc.Language
	}
	if action.PaymentInstrument != nil {
		req.PaymentInstrumentID = action.PaymentInstrument.PaymentInstrumentID
	}

	return sm.Sessions.EnsurePaymentSession(ctx, challengeSessionID(resolution, action), req)
}

// challengeSessionID derives the payment session id of a challenge action
// without one, so every resolution of the same action gets the same session
func challengeSessionID(resolution *Resolution, action models.ClientAction) string {
	instrumentID := ""
	if action.PaymentInstrument != nil {
		instrumentID = action.PaymentInstrument.PaymentInstrumentID
	}
	name := strings.Join([]string{
		string(resolution.RequestType),
		resolution.RequestID,
		action.ChallengeType,
		string(action.ChallengeScenario),
		instrumentID,
	}, "/")
	return uuid.NewSHA1(challengeSessionNamespace, []byte(name)).String()
}

func malformedSnapshot(rc models.RequestContext, msg string) error {
	return &IntegrationError{
		Downstream:    orchestratorName,
		CorrelationID: rc.CorrelationID,
		Err:           errors.New(msg),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
