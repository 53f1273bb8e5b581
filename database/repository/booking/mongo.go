package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"classbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  *zap.Logger
}

// NewMongoBookingRepo constructs a repository over db.collection.
func NewMongoBookingRepo(client *mongo.Client, dbName, collection string, timeout time.Duration, logger *zap.Logger) *MongoBookingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoBookingRepo{
		coll:    client.Database(dbName).Collection(collection),
		timeout: timeout,
		logger:  logger,
	}
}

var orderByDateStart = bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}

// List fetches every booking ordered by date then start time.
func (repo *MongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{})
}

// ListByDate fetches the bookings of a single date.
func (repo *MongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{"date": date})
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(orderByDateStart))
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			repo.logger.Warn("skipping undecodable booking document", zap.Error(err))
			continue
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return keepValid(bookings, repo.logger), nil
}

// Insert stores a new booking document.
func (repo *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	prepareInsert(booking, time.Now())
	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// Ping reports whether the MongoDB deployment is reachable.
func (repo *MongoBookingRepo) Ping(ctx context.Context) error {
	return repo.coll.Database().Client().Ping(ctx, nil)
}
