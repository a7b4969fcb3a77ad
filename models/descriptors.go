package models

// ResourceDescriptor identifies a UI component the PIDL renderer must produce
type ResourceDescriptor struct {
	Component       string               `json:"component"`
	DescriptionType string               `json:"descriptionType"`
	Parameters      DescriptorParameters `json:"parameters"`
}

// DescriptorParameters are the per component parameters of a descriptor
type DescriptorParameters struct {
	Component        string `json:"component"`
	Partner          string `json:"partner"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	Type             string `json:"type,omitempty"`
	Scenario         string `json:"scenario,omitempty"`
	Family           string `json:"family,omitempty"`
	PaymentSessionID string `json:"paymentSessionId,omitempty"`
	ChallengeType    string `json:"challengeType,omitempty"`
}

// PIDLOverride replaces a single property of a rendered component
type PIDLOverride struct {
	Component string `json:"component"`
	Property  string `json:"property"`
	Value     string `json:"value"`
}

// SubmissionOrderEntry records where a component is posted back on confirmation
type SubmissionOrderEntry struct {
	InstanceName string `json:"instanceName"`
	ValidateOnly bool   `json:"validateOnly"`
}

// ClientActionRest is the single client action surfaced in a response
type ClientActionRest struct {
	Type             ClientActionType `json:"type"`
	ChallengeType    string           `json:"challengeType,omitempty"`
	PaymentSessionID string           `json:"paymentSessionId,omitempty"`
}

// PaymentMethodDescriptions is the ordered UI description returned to the client
type PaymentMethodDescriptions struct {
	RequestID       string                 `json:"requestId"`
	RequestType     RequestType            `json:"requestType"`
	Status          string                 `json:"status"`
	ClientAction    *ClientActionRest      `json:"clientAction,omitempty"`
	ComponentProps  []ResourceDescriptor   `json:"componentProps"`
	PIDLOverrides   []PIDLOverride         `json:"pidlOverrides"`
	SubmissionOrder []SubmissionOrderEntry `json:"submissionOrder"`
}
