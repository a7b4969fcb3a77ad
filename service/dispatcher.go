package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
	"golang.org/x/sync/errgroup"
)

// Dispatcher surfaces the single next client action of a checkout or payment
// request as an ordered UI description
type Dispatcher struct {
	Orchestrator    PaymentOrchestrator
	PartnerSettings PartnerSettingsProvider
	StateMachine    *StateMachine
}

// Dispatch fetches the latest snapshot and the partner component settings
// concurrently, resolves the next action and composes its description
func (d *Dispatcher) Dispatch(ctx context.Context, requestType models.RequestType, requestID string, rc models.RequestContext) (*models.PaymentMethodDescriptions, error) {
	if requestID == "" {
		return nil, &ValidationError{Message: "request id is required"}
	}

	if requestType != models.RequestTypeCheckout && requestType != models.RequestTypePaymentRequest {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown request type [%s]", requestType)}
	}

	var checkout *models.CheckoutRequestClientActions
	var paymentRequest *models.PaymentRequestClientActions
	var componentSettings []string

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if requestType == models.RequestTypeCheckout {
			checkout, err = d.Orchestrator.GetCheckoutClientActions(gctx, requestID)
		} else {
			paymentRequest, err = d.Orchestrator.GetPaymentRequestClientActions(gctx, requestID)
		}
		return err
	})

	if d.PartnerSettings != nil && rc.Partner != "" && rc.IsFlightEnabled(models.FlightPartnerComponentSettings) {
		g.Go(func() error {
			var err error
			componentSettings, err = d.PartnerSettings.GetComponentSettings(gctx, rc.Partner)
			if err != nil {
				return fmt.Errorf("error getting component settings for partner [%s]: [%w]", rc.Partner, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// resolution is sequential and may create a payment session
	var resolution *Resolution
	var err error
	if requestType == models.RequestTypeCheckout {
		resolution, err = d.StateMachine.ResolveCheckout(ctx, checkout, rc)
	} else {
		resolution, err = d.StateMachine.ResolvePaymentRequest(ctx, paymentRequest, rc)
	}
	if err != nil {
		return nil, err
	}

	descriptions := &models.PaymentMethodDescriptions{
		RequestID:   resolution.RequestID,
		RequestType: resolution.RequestType,
		Status:      resolution.Status,
	}

	cc := ComposeContext{RequestContext: rc, ComponentSettings: componentSettings}

	var composition *Composition
	if resolution.NextAction == nil {
		composition = newComposition()
	} else {
		switch resolution.NextAction.Type {
		case models.ClientActionHandleChallenge:
			composition = ComposeChallenge(resolution, cc)
			descriptions.ClientAction = &models.ClientActionRest{
				Type:          models.ClientActionHandleChallenge,
				ChallengeType: resolution.NextAction.ChallengeType,
			}
			if resolution.PaymentSession != nil {
				descriptions.ClientAction.PaymentSessionID = resolution.PaymentSession.ID
			}
		default:
			composition = ComposeSelection(resolution, cc)
			descriptions.ClientAction = &models.ClientActionRest{Type: models.ClientActionSelectPaymentMethod}
		}
	}

	descriptions.ComponentProps = composition.ComponentProps
	descriptions.PIDLOverrides = composition.PIDLOverrides
	descriptions.SubmissionOrder = composition.SubmissionOrder

	log.Info("payment method descriptions composed", log.Data{
		"request_id":       requestID,
		"request_type":     requestType,
		"status":           resolution.Status,
		"components":       len(descriptions.ComponentProps),
		"submission_order": len(descriptions.SubmissionOrder),
		"correlation_id":   rc.CorrelationID,
	})

	return descriptions, nil
}
