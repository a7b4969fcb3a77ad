package service

import (
	"strings"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// ComponentName names a UI component the composer knows how to describe
type ComponentName string

// Component names that may appear in the default list or a partner list
const (
	ComponentProfile         ComponentName = "Profile"
	ComponentAddress         ComponentName = "Address"
	ComponentPaymentMethod   ComponentName = "PaymentMethod"
	ComponentOrderSummary    ComponentName = "OrderSummary"
	ComponentExpressCheckout ComponentName = "ExpressCheckout"
	ComponentConfirm         ComponentName = "Confirm"
	ComponentChallenge       ComponentName = "Challenge"
)

// Submission order instance names
const (
	InstanceProfile         = "profile"
	InstanceAddress         = "address"
	InstanceAddressScenario = "addressScenario"
	InstanceConfirm         = "confirm"
	InstanceChallenge       = "challenge"
)

// AddressScenarioAttachedInstrument asks for the billing address of an already attached instrument
const AddressScenarioAttachedInstrument = "attachedInstrument"

// defaultComponents is the selection layout used when no partner list applies.
// The address scenario and Confirm are always appended after it.
var defaultComponents = []ComponentName{
	ComponentProfile,
	ComponentAddress,
	ComponentPaymentMethod,
	ComponentOrderSummary,
	ComponentExpressCheckout,
}

// ComposeContext is everything besides the resolved state that shapes the UI description
type ComposeContext struct {
	RequestContext    models.RequestContext
	ComponentSettings []string
}

// Composition is the ordered UI description of the next client action
type Composition struct {
	ComponentProps  []models.ResourceDescriptor
	PIDLOverrides   []models.PIDLOverride
	SubmissionOrder []models.SubmissionOrderEntry

	submitted map[string]bool
}

func newComposition() *Composition {
	return &Composition{
		ComponentProps:  []models.ResourceDescriptor{},
		PIDLOverrides:   []models.PIDLOverride{},
		SubmissionOrder: []models.SubmissionOrderEntry{},
		submitted:       map[string]bool{},
	}
}

// submit records instanceName in the submission order once
func (c *Composition) submit(instanceName string, validateOnly bool) {
	if c.submitted[instanceName] {
		return
	}
	c.submitted[instanceName] = true
	c.SubmissionOrder = append(c.SubmissionOrder, models.SubmissionOrderEntry{InstanceName: instanceName, ValidateOnly: validateOnly})
}

func (c *Composition) describe(component, descriptionType string, cc ComposeContext, params models.DescriptorParameters) {
	params.Component = component
	params.Partner = cc.RequestContext.Partner
	params.Country = cc.RequestContext.Country
	params.Language = cc.RequestContext.Language
	c.ComponentProps = append(c.ComponentProps, models.ResourceDescriptor{
		Component:       component,
		DescriptionType: descriptionType,
		Parameters:      params,
	})
}

type componentBuilder func(c *Composition, state *Resolution, cc ComposeContext)

var componentBuilders = map[ComponentName]componentBuilder{
	ComponentProfile:         buildProfile,
	ComponentAddress:         buildAddress,
	ComponentPaymentMethod:   buildPaymentMethods,
	ComponentOrderSummary:    buildOrderSummary,
	ComponentExpressCheckout: buildExpressCheckout,
}

func buildProfile(c *Composition, state *Resolution, cc ComposeContext) {
	c.describe("profile", "profile", cc, models.DescriptorParameters{Type: "customer"})
	c.submit(InstanceProfile, true)
}

func buildAddress(c *Composition, state *Resolution, cc ComposeContext) {
	c.describe("address", "address", cc, models.DescriptorParameters{Type: "billing"})
	c.submit(InstanceAddress, true)
}

func buildPaymentMethods(c *Composition, state *Resolution, cc ComposeContext) {
	for _, group := range state.Groups {
		c.describe("paymentMethod", "paymentMethod", cc, models.DescriptorParameters{
			Family: group.Family,
			Type:   group.SubmissionOrderID,
		})
		c.submit(group.SubmissionOrderID, false)
	}
}

// buildOrderSummary is skipped when the partner renders its own summary
func buildOrderSummary(c *Composition, state *Resolution, cc ComposeContext) {
	if !state.Capabilities.ComputeTax && cc.RequestContext.IsFlightEnabled(models.FlightHideOrderSummaryWhenNoTax) {
		c.PIDLOverrides = append(c.PIDLOverrides, models.PIDLOverride{
			Component: "confirm",
			Property:  "showOrderSummary",
			Value:     "false",
		})
		return
	}
	c.describe("orderSummary", "orderSummary", cc, models.DescriptorParameters{})
}

func buildExpressCheckout(c *Composition, state *Resolution, cc ComposeContext) {
	if len(state.QuickPaymentMethods) == 0 {
		return
	}

	var types []string
	for _, method := range state.QuickPaymentMethods {
		if !contains(types, method.PaymentMethodType) {
			types = append(types, method.PaymentMethodType)
		}
	}
	joined := strings.Join(types, "_")

	c.describe("expressCheckout", "expressCheckoutButton", cc, models.DescriptorParameters{Type: joined})
	c.PIDLOverrides = append(c.PIDLOverrides, models.PIDLOverride{
		Component: "expressCheckout",
		Property:  "paymentMethodTypes",
		Value:     joined,
	})
}

func buildAddressScenario(c *Composition, state *Resolution, cc ComposeContext) {
	if !state.HasAttachedInstrument {
		return
	}
	c.describe("address", "address", cc, models.DescriptorParameters{Type: "billing", Scenario: AddressScenarioAttachedInstrument})
	c.submit(InstanceAddressScenario, true)
}

func buildConfirm(c *Composition, state *Resolution, cc ComposeContext) {
	c.describe("confirm", "confirm", cc, models.DescriptorParameters{})
	c.submit(InstanceConfirm, false)
}

// selectionComponents returns the partner's component list when the partner
// settings flight is on and the partner declared one, otherwise the default list
func selectionComponents(cc ComposeContext) []ComponentName {
	if !cc.RequestContext.IsFlightEnabled(models.FlightPartnerComponentSettings) || len(cc.ComponentSettings) == 0 {
		return defaultComponents
	}

	components := make([]ComponentName, 0, len(cc.ComponentSettings))
	for _, name := range cc.ComponentSettings {
		components = append(components, ComponentName(name))
	}
	return components
}

// ComposeSelection describes the payment method selection UI. It has no side effects.
func ComposeSelection(state *Resolution, cc ComposeContext) *Composition {
	c := newComposition()

	built := map[ComponentName]bool{}
	for _, name := range selectionComponents(cc) {
		build, ok := componentBuilders[name]
		if !ok || built[name] {
			// unknown partner components and Confirm are skipped, Confirm is always added last
			continue
		}
		built[name] = true
		build(c, state, cc)
	}

	buildAddressScenario(c, state, cc)
	buildConfirm(c, state, cc)

	return c
}

// ComposeChallenge describes the UI for the pending payment challenge
func ComposeChallenge(state *Resolution, cc ComposeContext) *Composition {
	c := newComposition()

	params := models.DescriptorParameters{}
	if state.NextAction != nil {
		params.ChallengeType = state.NextAction.ChallengeType
		params.Scenario = string(state.NextAction.ChallengeScenario)
	}
	if state.PaymentSession != nil {
		params.PaymentSessionID = state.PaymentSession.ID
		if params.Scenario == "" {
			params.Scenario = string(state.PaymentSession.ChallengeScenario)
		}
	}

	c.describe("challenge", "challenge", cc, params)
	c.submit(InstanceChallenge, false)

	return c
}
