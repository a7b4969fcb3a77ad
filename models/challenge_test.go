package models

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitChallengeStatusTransitions(t *testing.T) {

	Convey("Unknown may move to a challenge or a frictionless outcome", t, func() {
		So(ChallengeStatusUnknown.CanTransitionTo(ChallengeStatusChallenge), ShouldBeTrue)
		So(ChallengeStatusUnknown.CanTransitionTo(ChallengeStatusApproved), ShouldBeTrue)
		So(ChallengeStatusUnknown.CanTransitionTo(ChallengeStatusDeclined), ShouldBeTrue)
		So(ChallengeStatusUnknown.CanTransitionTo(ChallengeStatusCancelled), ShouldBeFalse)
	})

	Convey("Challenge may only move to a challenge outcome", t, func() {
		So(ChallengeStatusChallenge.CanTransitionTo(ChallengeStatusSucceeded), ShouldBeTrue)
		So(ChallengeStatusChallenge.CanTransitionTo(ChallengeStatusTimedOut), ShouldBeTrue)
		So(ChallengeStatusChallenge.CanTransitionTo(ChallengeStatusUnknown), ShouldBeFalse)
		So(ChallengeStatusChallenge.CanTransitionTo(ChallengeStatusApproved), ShouldBeFalse)
	})

	Convey("Terminal statuses never move", t, func() {
		for _, s := range []ChallengeStatus{ChallengeStatusApproved, ChallengeStatusDeclined, ChallengeStatusSucceeded,
			ChallengeStatusFailed, ChallengeStatusCancelled, ChallengeStatusTimedOut} {
			So(s.IsTerminal(), ShouldBeTrue)
			So(s.CanTransitionTo(ChallengeStatusChallenge), ShouldBeFalse)
			So(s.CanTransitionTo(ChallengeStatusUnknown), ShouldBeFalse)
		}
		So(ChallengeStatusUnknown.IsTerminal(), ShouldBeFalse)
		So(ChallengeStatusChallenge.IsTerminal(), ShouldBeFalse)
	})
}

func TestUnitRequestContextFlights(t *testing.T) {
	Convey("Flights are matched exactly", t, func() {
		rc := RequestContext{Flights: []string{FlightHideOrderSummaryWhenNoTax}}
		So(rc.IsFlightEnabled(FlightHideOrderSummaryWhenNoTax), ShouldBeTrue)
		So(rc.IsFlightEnabled(FlightPartnerComponentSettings), ShouldBeFalse)
	})
}
