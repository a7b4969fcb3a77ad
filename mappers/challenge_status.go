package mappers

import (
	"strconv"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// 3DS2 transStatus values
const (
	TransStatusAuthenticated    = "Y"
	TransStatusNotAuthenticated = "N"
	TransStatusUnavailable      = "U"
	TransStatusAttempted        = "A"
	TransStatusChallenge        = "C"
	TransStatusDecoupled        = "D"
	TransStatusRejected         = "R"
	TransStatusInformational    = "I"
)

// TransStatusReasonChallengeTimedOut is the reason code the ACS reports when
// the cardholder did not complete the challenge in time
const TransStatusReasonChallengeTimedOut = "14"

// transStatusReasons are the reason codes assigned by the 3DS2 protocol.
// 22-79 are reserved for future network use and 80-99 for directory servers.
var transStatusReasons = map[string]string{
	"01": "card-authentication-failed",
	"02": "unknown-device",
	"03": "unsupported-device",
	"04": "exceeds-authentication-frequency-limit",
	"05": "expired-card",
	"06": "invalid-card-number",
	"07": "invalid-transaction",
	"08": "no-card-record",
	"09": "security-failure",
	"10": "stolen-card",
	"11": "suspected-fraud",
	"12": "transaction-not-permitted-to-cardholder",
	"13": "cardholder-not-enrolled-in-service",
	"14": "transaction-timed-out-at-acs",
	"15": "low-confidence",
	"16": "medium-confidence",
	"17": "high-confidence",
	"18": "very-high-confidence",
	"19": "exceeds-acs-maximum-challenges",
	"20": "non-payment-transaction-not-supported",
	"21": "3ri-transaction-not-supported",
}

// ReasonCategory classifies a transStatusReason code
type ReasonCategory string

// Reason code categories
const (
	ReasonAssigned          ReasonCategory = "assigned"
	ReasonReservedNetwork   ReasonCategory = "reserved-network"
	ReasonReservedDirectory ReasonCategory = "reserved-directory-server"
	ReasonUnrecognised      ReasonCategory = "unrecognised"
	ReasonAbsent            ReasonCategory = "absent"
)

// ClassifyTransStatusReason places a raw reason code in its category without
// inferring any meaning for reserved codes
func ClassifyTransStatusReason(code string) ReasonCategory {
	if code == "" {
		return ReasonAbsent
	}
	if _, ok := transStatusReasons[code]; ok {
		return ReasonAssigned
	}
	if len(code) != 2 {
		return ReasonUnrecognised
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return ReasonUnrecognised
	}
	switch {
	case n >= 22 && n <= 79:
		return ReasonReservedNetwork
	case n >= 80 && n <= 99:
		return ReasonReservedDirectory
	}
	return ReasonUnrecognised
}

// DescribeTransStatusReason returns the internal name of an assigned reason
// code, or the category for anything else. Raw codes are never returned.
func DescribeTransStatusReason(code string) string {
	if description, ok := transStatusReasons[code]; ok {
		return description
	}
	return string(ClassifyTransStatusReason(code))
}

// ChallengeOutcome is the internal result of mapping an ACS report
type ChallengeOutcome struct {
	Status            models.ChallengeStatus
	Resolved          bool
	TransStatus       string
	TransStatusReason string
	ReasonCategory    ReasonCategory
}

// MapChallengeResult maps the ACS reported result of an interactive challenge.
// A result without a resolving transStatus leaves the outcome unresolved and
// is never treated as success.
func MapChallengeResult(result *models.ChallengeResult) ChallengeOutcome {
	if result == nil {
		return ChallengeOutcome{Status: models.ChallengeStatusUnknown, ReasonCategory: ReasonAbsent}
	}

	outcome := ChallengeOutcome{
		Status:            models.ChallengeStatusUnknown,
		TransStatus:       result.TransStatus,
		TransStatusReason: result.TransStatusReason,
		ReasonCategory:    ClassifyTransStatusReason(result.TransStatusReason),
	}

	switch result.TransStatus {
	case TransStatusAuthenticated:
		outcome.Status = models.ChallengeStatusSucceeded
		outcome.Resolved = true
	case TransStatusNotAuthenticated:
		outcome.Resolved = true
		switch {
		case result.ChallengeCancel != "":
			outcome.Status = models.ChallengeStatusCancelled
		case result.TransStatusReason == TransStatusReasonChallengeTimedOut:
			outcome.Status = models.ChallengeStatusTimedOut
		default:
			outcome.Status = models.ChallengeStatusFailed
		}
	case TransStatusRejected:
		outcome.Status = models.ChallengeStatusFailed
		outcome.Resolved = true
	}

	return outcome
}

// MapAuthenticationStatus maps the transStatus of an RRes to the status the
// session moves to after authenticate
func MapAuthenticationStatus(transStatus string) models.ChallengeStatus {
	switch transStatus {
	case TransStatusAuthenticated, TransStatusAttempted:
		return models.ChallengeStatusApproved
	case TransStatusChallenge, TransStatusDecoupled:
		return models.ChallengeStatusChallenge
	case TransStatusNotAuthenticated, TransStatusRejected:
		return models.ChallengeStatusDeclined
	}
	return models.ChallengeStatusUnknown
}
