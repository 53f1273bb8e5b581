package bookingRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"classbook/models"

	"go.uber.org/zap"
)

// MemoryBookingRepo keeps bookings in process memory. It backs the "memory"
// store driver and the tests; nothing survives a restart.
type MemoryBookingRepo struct {
	mu     sync.RWMutex
	byDate map[string][]models.Booking
	logger *zap.Logger
	now    func() time.Time
}

func NewMemoryBookingRepo(logger *zap.Logger) *MemoryBookingRepo {
	return &MemoryBookingRepo{
		byDate: make(map[string][]models.Booking),
		logger: logger,
		now:    time.Now,
	}
}

func (repo *MemoryBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	repo.mu.RLock()
	var out []models.Booking
	for _, day := range repo.byDate {
		out = append(out, day...)
	}
	repo.mu.RUnlock()

	sortByDateStart(out)
	return keepValid(out, repo.logger), nil
}

func (repo *MemoryBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	repo.mu.RLock()
	out := make([]models.Booking, len(repo.byDate[date]))
	copy(out, repo.byDate[date])
	repo.mu.RUnlock()

	sortByDateStart(out)
	return keepValid(out, repo.logger), nil
}

func (repo *MemoryBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	prepareInsert(booking, repo.now())
	repo.byDate[booking.Date] = append(repo.byDate[booking.Date], *booking)
	return nil
}

func (repo *MemoryBookingRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

func sortByDateStart(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].StartTime < bookings[j].StartTime
	})
}
