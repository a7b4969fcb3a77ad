package dao

import (
	"context"
	"errors"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/config"
	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
)

// ErrVersionConflict is returned when a payment session was written by
// another request since it was read
var ErrVersionConflict = errors.New("payment session was modified concurrently")

// DAO is an interface for accessing payment sessions from a backend store
type DAO interface {
	CreatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) error
	FindOrCreatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) (*models.PaymentSessionDB, error)
	GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionDB, error)
	ClaimAuthentication(ctx context.Context, id string, now, staleBefore time.Time) (*models.PaymentSessionDB, error)
	ReleaseAuthentication(ctx context.Context, id string, claimedAt time.Time) error
	UpdatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) error
}

// NewDAO will create a new instance of the DAO interface
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:             database,
		CollectionName: cfg.Collection,
	}
}
