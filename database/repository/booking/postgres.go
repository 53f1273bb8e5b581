package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"classbook/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormBookingRepo implements BookingRepository on PostgreSQL through gorm.
type GormBookingRepo struct {
	db      *gorm.DB
	table   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGormBookingRepo constructs a repository over the given table.
func NewGormBookingRepo(db *gorm.DB, table string, timeout time.Duration, logger *zap.Logger) *GormBookingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GormBookingRepo{db: db, table: table, timeout: timeout, logger: logger}
}

// Migrate creates or updates the bookings table.
func (repo *GormBookingRepo) Migrate() error {
	if err := repo.db.Table(repo.table).AutoMigrate(&models.Booking{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", repo.table, err)
	}
	return nil
}

func (repo *GormBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var bookings []models.Booking
	err := repo.db.WithContext(ctx).Table(repo.table).
		Order("date ASC").
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return keepValid(bookings, repo.logger), nil
}

func (repo *GormBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var bookings []models.Booking
	err := repo.db.WithContext(ctx).Table(repo.table).
		Where("date = ?", date).
		Order("start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for %s: %w", date, err)
	}
	return keepValid(bookings, repo.logger), nil
}

func (repo *GormBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	prepareInsert(booking, time.Now())
	if err := repo.db.WithContext(ctx).Table(repo.table).Create(booking).Error; err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// Ping reports whether the database answers.
func (repo *GormBookingRepo) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
