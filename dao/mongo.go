package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/checkout.api.ch.gov.uk/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// Check we can connect to the mongodb instance. Failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = mongoClient.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// CreatePaymentSession writes a new payment session to the DB
func (m *MongoService) CreatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) error {
	collection := m.db.Collection(m.CollectionName)
	_, err := collection.InsertOne(ctx, session)
	return err
}

// FindOrCreatePaymentSession inserts the session unless one with the same id
// already exists, and returns whichever is stored
func (m *MongoService) FindOrCreatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) (*models.PaymentSessionDB, error) {
	var stored models.PaymentSessionDB
	collection := m.db.Collection(m.CollectionName)

	update := bson.M{
		"$setOnInsert": bson.M{
			"version":                session.Version,
			"data":                   session.Data,
			"three_ds":               session.ThreeDS,
			"attempts":               session.Attempts,
			"authenticate_in_flight": false,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	err := collection.FindOneAndUpdate(ctx, bson.M{"_id": session.ID}, update, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("error upserting payment session [%s]: %w", session.ID, err)
	}

	return &stored, nil
}

// GetPaymentSession gets a payment session from the DB.
// If the session is not found in the DB, return nil
func (m *MongoService) GetPaymentSession(ctx context.Context, id string) (*models.PaymentSessionDB, error) {
	var session models.PaymentSessionDB
	collection := m.db.Collection(m.CollectionName)

	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

// ClaimAuthentication marks the payment session as having an authenticate
// call in flight. A claim older than staleBefore may be taken over. It
// returns nil when the session is missing or already claimed.
func (m *MongoService) ClaimAuthentication(ctx context.Context, id string, now, staleBefore time.Time) (*models.PaymentSessionDB, error) {
	var session models.PaymentSessionDB
	collection := m.db.Collection(m.CollectionName)

	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"authenticate_in_flight": bson.M{"$ne": true}},
			bson.M{"in_flight_since": bson.M{"$lt": staleBefore}},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"authenticate_in_flight": true,
			"in_flight_since":        now,
		},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error claiming payment session [%s] for authentication: %w", id, err)
	}

	return &session, nil
}

// ReleaseAuthentication clears the in flight marker without touching any
// other field. Only the claim made at claimedAt is released, so a claim that
// has since been taken over is left alone.
func (m *MongoService) ReleaseAuthentication(ctx context.Context, id string, claimedAt time.Time) error {
	collection := m.db.Collection(m.CollectionName)

	filter := bson.M{
		"_id":                    id,
		"authenticate_in_flight": true,
		"in_flight_since":        claimedAt,
	}
	update := bson.M{
		"$set":   bson.M{"authenticate_in_flight": false},
		"$unset": bson.M{"in_flight_since": ""},
		"$inc":   bson.M{"version": 1},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error releasing payment session [%s]: %w", id, err)
	}
	if result.MatchedCount == 0 {
		log.Info("authenticate claim no longer held, nothing released", log.Data{"payment_session_id": id})
	}
	return nil
}

// UpdatePaymentSession writes the mutable parts of the session if nobody
// else has written it since it was read. On success the version of the
// passed session is moved on.
func (m *MongoService) UpdatePaymentSession(ctx context.Context, session *models.PaymentSessionDB) error {
	collection := m.db.Collection(m.CollectionName)

	filter := bson.M{"_id": session.ID, "version": session.Version}
	update := bson.M{
		"$set": bson.M{
			"data":                   session.Data,
			"three_ds":               session.ThreeDS,
			"attempts":               session.Attempts,
			"authenticate_in_flight": session.AuthenticateInFlight,
			"in_flight_since":        session.InFlightSince,
			"version":                session.Version + 1,
		},
	}

	result, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating payment session [%s]: %w", session.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}

	session.Version++
	return nil
}
