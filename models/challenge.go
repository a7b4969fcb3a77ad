package models

// ChallengeStatus is the outcome of the step-up authentication of a payment session
type ChallengeStatus string

// Challenge statuses. Approved and Declined come from a frictionless
// authenticate call, the rest from an interactive challenge.
const (
	ChallengeStatusUnknown   ChallengeStatus = "Unknown"
	ChallengeStatusChallenge ChallengeStatus = "Challenge"
	ChallengeStatusApproved  ChallengeStatus = "Approved"
	ChallengeStatusDeclined  ChallengeStatus = "Declined"
	ChallengeStatusSucceeded ChallengeStatus = "Succeeded"
	ChallengeStatusFailed    ChallengeStatus = "Failed"
	ChallengeStatusCancelled ChallengeStatus = "Cancelled"
	ChallengeStatusTimedOut  ChallengeStatus = "TimedOut"
)

var challengeTransitions = map[ChallengeStatus][]ChallengeStatus{
	ChallengeStatusUnknown: {
		ChallengeStatusChallenge,
		ChallengeStatusApproved,
		ChallengeStatusDeclined,
		ChallengeStatusSucceeded,
	},
	ChallengeStatusChallenge: {
		ChallengeStatusChallenge,
		ChallengeStatusSucceeded,
		ChallengeStatusFailed,
		ChallengeStatusCancelled,
		ChallengeStatusTimedOut,
	},
}

// CanTransitionTo reports whether a session in status s may move to next.
// Terminal statuses have no outgoing transitions.
func (s ChallengeStatus) CanTransitionTo(next ChallengeStatus) bool {
	for _, allowed := range challengeTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible
func (s ChallengeStatus) IsTerminal() bool {
	switch s {
	case ChallengeStatusApproved, ChallengeStatusDeclined, ChallengeStatusSucceeded,
		ChallengeStatusFailed, ChallengeStatusCancelled, ChallengeStatusTimedOut:
		return true
	}
	return false
}

// IsSuccess reports whether the cardholder was authenticated
func (s ChallengeStatus) IsSuccess() bool {
	return s == ChallengeStatusApproved || s == ChallengeStatusSucceeded
}

// ChallengeScenario is the kind of transaction being authenticated
type ChallengeScenario string

// Supported challenge scenarios
const (
	ScenarioPaymentTransaction   ChallengeScenario = "PaymentTransaction"
	ScenarioRecurringTransaction ChallengeScenario = "RecurringTransaction"
	ScenarioAddCard              ChallengeScenario = "AddCard"
)

// ChallengeWindowSize is the 3DS2 challengeWindowSize code
type ChallengeWindowSize string

// Challenge window sizes as defined by the 3DS2 protocol
const (
	ChallengeWindowSize250x400  ChallengeWindowSize = "01"
	ChallengeWindowSize390x400  ChallengeWindowSize = "02"
	ChallengeWindowSize500x600  ChallengeWindowSize = "03"
	ChallengeWindowSize600x400  ChallengeWindowSize = "04"
	ChallengeWindowSizeFullPage ChallengeWindowSize = "05"
)

// Defaults applied to new payment sessions
const (
	DefaultChallengeWindowSize   = ChallengeWindowSizeFullPage
	DefaultThreeDSMessageVersion = "2.2.0"
)
