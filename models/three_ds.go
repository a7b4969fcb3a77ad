package models

// DeviceChannel is the 3DS2 channel the authentication is performed over
type DeviceChannel string

// Device channels
const (
	DeviceChannelApp     DeviceChannel = "01"
	DeviceChannelBrowser DeviceChannel = "02"
)

// AuthenticationRequest is the AReq sent to the authentication provider
type AuthenticationRequest struct {
	PaymentSessionID             string              `json:"paymentSessionId"`
	MessageVersion               string              `json:"messageVersion"`
	DeviceChannel                DeviceChannel       `json:"deviceChannel"`
	MessageCategory              string              `json:"messageCategory"`
	ChallengeScenario            ChallengeScenario   `json:"challengeScenario"`
	ChallengeWindowSize          ChallengeWindowSize `json:"challengeWindowSize,omitempty"`
	PurchaseAmount               int64               `json:"purchaseAmount"`
	PurchaseCurrency             string              `json:"purchaseCurrency"`
	PurchaseExponent             int32               `json:"purchaseExponent"`
	MerchantCountryCode          string              `json:"merchantCountryCode"`
	PaymentInstrumentID          string              `json:"paymentInstrumentId,omitempty"`
	IsMOTO                       bool                `json:"isMoto"`
	BrowserInfo                  *BrowserInfo        `json:"browserInfo,omitempty"`
	SDKInfo                      *SDKInfo            `json:"sdkInfo,omitempty"`
	ThreeDSRequestorURL          string              `json:"threeDSRequestorURL,omitempty"`
	ThreeDSRequestorChallengeInd string              `json:"threeDSRequestorChallengeInd,omitempty"`
}

// AuthenticationResult is the RRes returned by the authentication provider
type AuthenticationResult struct {
	ThreeDSServerTransID   string `json:"threeDSServerTransID"`
	TransStatus            string `json:"transStatus"`
	TransStatusReason      string `json:"transStatusReason,omitempty"`
	AuthenticationValue    string `json:"authenticationValue,omitempty"`
	ECI                    string `json:"eci,omitempty"`
	AcsTransID             string `json:"acsTransID,omitempty"`
	AcsURL                 string `json:"acsURL,omitempty"`
	AcsSignedContent       string `json:"acsSignedContent,omitempty"`
	ChallengeRequest       string `json:"creq,omitempty"`
	RiskChallengeIndicator string `json:"riskChallengeIndicator,omitempty"`
	MessageVersion         string `json:"messageVersion,omitempty"`
}

// ChallengeResult is the ACS reported outcome of an interactive challenge.
// An empty TransStatus means the ACS has not reported yet.
type ChallengeResult struct {
	ThreeDSServerTransID string `json:"threeDSServerTransID"`
	TransStatus          string `json:"transStatus,omitempty"`
	TransStatusReason    string `json:"transStatusReason,omitempty"`
	ChallengeCancel      string `json:"challengeCancel,omitempty"`
	AuthenticationValue  string `json:"authenticationValue,omitempty"`
	ECI                  string `json:"eci,omitempty"`
}
