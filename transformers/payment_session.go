package transformers

import (
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// PaymentSessionTransformer transforms payment session data between rest and database models
type PaymentSessionTransformer struct{}

// TransformToDB transforms payment session rest model into payment session database model.
// Server side counters and the in-flight marker are not part of the rest model and are left zero.
func (pt PaymentSessionTransformer) TransformToDB(rest models.PaymentSessionRest) models.PaymentSessionDB {
	paymentSessionData := models.PaymentSessionDataDB{
		Amount:              rest.Amount,
		Currency:            rest.Currency,
		Country:             rest.Country,
		Language:            rest.Language,
		IsMOTO:              rest.IsMOTO,
		PaymentInstrumentID: rest.PaymentInstrumentID,
		ChallengeStatus:     rest.ChallengeStatus,
		ChallengeScenario:   rest.ChallengeScenario,
		ChallengeWindowSize: rest.ChallengeWindowSize,
		CreatedAt:           rest.CreatedAt,
	}

	threeDS := models.ThreeDSDataDB{
		ServerTransactionID:    rest.ThreeDSServerTransactionID,
		AcsSignedContent:       rest.AcsSignedContent,
		RiskChallengeIndicator: rest.RiskChallengeIndicator,
		MessageVersion:         rest.MessageVersion,
	}

	return models.PaymentSessionDB{
		ID:      rest.ID,
		Data:    paymentSessionData,
		ThreeDS: threeDS,
	}
}

// TransformToRest transforms payment session database model into payment session rest model
func (pt PaymentSessionTransformer) TransformToRest(dbSession models.PaymentSessionDB) models.PaymentSessionRest {
	return models.PaymentSessionRest{
		ID:                         dbSession.ID,
		Amount:                     dbSession.Data.Amount,
		Currency:                   dbSession.Data.Currency,
		Country:                    dbSession.Data.Country,
		Language:                   dbSession.Data.Language,
		IsMOTO:                     dbSession.Data.IsMOTO,
		PaymentInstrumentID:        dbSession.Data.PaymentInstrumentID,
		ChallengeStatus:            dbSession.Data.ChallengeStatus,
		ChallengeScenario:          dbSession.Data.ChallengeScenario,
		ChallengeWindowSize:        dbSession.Data.ChallengeWindowSize,
		ThreeDSServerTransactionID: dbSession.ThreeDS.ServerTransactionID,
		AcsSignedContent:           dbSession.ThreeDS.AcsSignedContent,
		RiskChallengeIndicator:     dbSession.ThreeDS.RiskChallengeIndicator,
		MessageVersion:             dbSession.ThreeDS.MessageVersion,
		CreatedAt:                  dbSession.Data.CreatedAt,
	}
}
