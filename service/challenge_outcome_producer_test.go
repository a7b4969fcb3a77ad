package service

import (
	"testing"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/avro"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPrepareChallengeOutcomeMessage(t *testing.T) {
	session := &models.PaymentSessionDB{
		ID: "12345",
		Data: models.PaymentSessionDataDB{
			ChallengeStatus: models.ChallengeStatusTimedOut,
		},
		ThreeDS: models.ThreeDSDataDB{
			TransStatus:       "N",
			TransStatusReason: "14",
		},
	}

	Convey("Successful message preparation with prepareChallengeOutcomeMessage", t, func() {
		// This is the schema that is used by the producer
		schema := `{
			"type": "record",
			"name": "payment_challenge_completed",
			"namespace": "checkout",
			"fields": [
			{"name": "payment_session_id", "type": "string"},
			{"name": "challenge_status", "type": "string"},
			{"name": "trans_status", "type": "string"},
			{"name": "trans_status_reason", "type": "string"}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, err := prepareChallengeOutcomeMessage(session, *producerSchema)
		So(err, ShouldBeNil)
		So(message.Topic, ShouldEqual, ChallengeOutcomeTopic)

		unmarshalled := challengeOutcome{}
		So(producerSchema.Unmarshal(message.Value, &unmarshalled), ShouldBeNil)
		So(unmarshalled.PaymentSessionID, ShouldEqual, "12345")
		So(unmarshalled.ChallengeStatus, ShouldEqual, "TimedOut")
		So(unmarshalled.TransStatusReason, ShouldEqual, "14")
	})

	Convey("Unsuccessful message preparation with prepareChallengeOutcomeMessage", t, func() {
		// payment_session_id has the wrong type, so marshalling fails
		schema := `{
			"type": "record",
			"name": "payment_challenge_completed",
			"namespace": "checkout",
			"fields": [
			{"name": "payment_session_id", "type": "int"}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		_, err := prepareChallengeOutcomeMessage(session, *producerSchema)
		So(err, ShouldNotBeEmpty)
	})
}
