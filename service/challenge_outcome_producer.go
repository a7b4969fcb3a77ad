package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
)

// ChallengeOutcomeTopic is the topic to which terminal challenge outcomes are sent
const ChallengeOutcomeTopic = "payment-challenge-completed"

// ChallengeOutcomeSchemaName is the schema used to send the challenge outcome kafka message with
const ChallengeOutcomeSchemaName = "payment-challenge-completed"

// challengeOutcome represents the avro schema of the challenge outcome message
type challengeOutcome struct {
	PaymentSessionID  string `avro:"payment_session_id"`
	ChallengeStatus   string `avro:"challenge_status"`
	TransStatus       string `avro:"trans_status"`
	TransStatusReason string `avro:"trans_status_reason"`
}

// KafkaChallengeOutcomeProducer sends challenge outcomes to kafka
type KafkaChallengeOutcomeProducer struct {
	BrokerAddr        []string
	SchemaRegistryURL string
}

// Publish creates a producer, marshals the outcome into the avro schema and
// sends it to ChallengeOutcomeTopic
func (p *KafkaChallengeOutcomeProducer) Publish(ctx context.Context, session *models.PaymentSessionDB) error {
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: p.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%w]", err)
	}

	outcomeSchema, err := schema.Get(p.SchemaRegistryURL, ChallengeOutcomeSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%w]", err)
	}
	producerSchema := avro.Schema{
		Definition: outcomeSchema,
	}

	message, err := prepareChallengeOutcomeMessage(session, producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%w]", err)
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d: [%w]", partition, offset, err)
	}
	return nil
}

// prepareChallengeOutcomeMessage is pulled out of Publish to allow unit testing of non-kafka portion of code
func prepareChallengeOutcomeMessage(session *models.PaymentSessionDB, outcomeSchema avro.Schema) (*producer.Message, error) {
	outcome := challengeOutcome{
		PaymentSessionID:  session.ID,
		ChallengeStatus:   string(session.Data.ChallengeStatus),
		TransStatus:       session.ThreeDS.TransStatus,
		TransStatusReason: session.ThreeDS.TransStatusReason,
	}

	messageBytes, err := outcomeSchema.Marshal(outcome)
	if err != nil {
		return nil, fmt.Errorf("error marshalling challenge outcome message: [%w]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ChallengeOutcomeTopic,
	}, nil
}
