package database

import (
	"context"
	"fmt"

	"classbook/config"
	bookingRepo "classbook/database/repository/booking"

	"go.uber.org/zap"
)

// BookingStore is a booking gateway the health monitor can ping.
type BookingStore interface {
	bookingRepo.BookingRepository
	Ping(ctx context.Context) error
}

// OpenBookingStore builds the gateway selected by STORE_DRIVER. The returned
// func releases the underlying connection.
func OpenBookingStore(logger *zap.Logger) (BookingStore, func(), error) {
	cfg := config.AppConfig
	switch cfg.StoreDriver {
	case "", "mongo":
		client, err := InitDB()
		if err != nil {
			return nil, nil, err
		}
		repo := bookingRepo.NewMongoBookingRepo(client, cfg.MongoDatabase, cfg.BookingsTable, cfg.StoreTimeout, logger)
		if err := repo.EnsureIndexes(); err != nil {
			logger.Warn("failed to ensure booking indexes", zap.Error(err))
		}
		return repo, func() { _ = client.Disconnect(context.Background()) }, nil

	case "postgres":
		db, err := InitPostgres()
		if err != nil {
			return nil, nil, err
		}
		repo := bookingRepo.NewGormBookingRepo(db, cfg.BookingsTable, cfg.StoreTimeout, logger)
		if err := repo.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("failed to migrate bookings table: %w", err)
		}
		closer := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repo, closer, nil

	case "memory":
		logger.Warn("using in-memory booking store; bookings are lost on restart")
		return bookingRepo.NewMemoryBookingRepo(logger), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
