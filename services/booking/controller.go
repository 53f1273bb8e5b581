package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingRepo "classbook/database/repository/booking"
	"classbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler is notified after every stored booking.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, b models.Booking) error
}

// Controller runs the load → validate → confirm → insert → reload flow.
// It is built once at startup and shared by the HTTP handlers; the booking
// list it keeps is a disposable cache replaced whole on every load.
type Controller struct {
	Repo       bookingRepo.BookingRepository
	Pending    PendingStore
	Reminders  ReminderScheduler
	Rules      Rules
	PendingTTL time.Duration
	Logger     *zap.Logger
	Now        func() time.Time

	mu       sync.RWMutex
	bookings []models.Booking
	schedule *models.Schedule
}

func NewController(repo bookingRepo.BookingRepository, pending PendingStore, rules Rules, pendingTTL time.Duration, logger *zap.Logger) *Controller {
	if pendingTTL <= 0 {
		pendingTTL = 10 * time.Minute
	}
	return &Controller{
		Repo:       repo,
		Pending:    pending,
		Rules:      rules,
		PendingTTL: pendingTTL,
		Logger:     logger,
		Now:        time.Now,
	}
}

// LoadAndRender reads every booking, rebuilds the table rows and calendar
// events from scratch and swaps them in. Calling it twice against an
// unchanged store yields the same schedule.
func (c *Controller) LoadAndRender(ctx context.Context) (*models.Schedule, error) {
	bookings, err := c.Repo.List(ctx)
	if err != nil {
		c.Logger.Error("failed to load bookings", zap.Error(err))
		return nil, readFailure(err)
	}

	schedule := &models.Schedule{
		Rows:   BuildRows(bookings),
		Events: BuildEvents(bookings, c.Now(), c.Logger),
	}

	c.mu.Lock()
	c.bookings = bookings
	c.schedule = schedule
	c.mu.Unlock()

	c.Logger.Debug("bookings rendered", zap.Int("count", len(bookings)))
	return schedule, nil
}

// Cached returns the bookings from the last successful load.
func (c *Controller) Cached() []models.Booking {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// Submit validates the form and either stores the booking or, when it
// overlaps existing same-date bookings, parks it for confirmation.
func (c *Controller) Submit(ctx context.Context, in models.BookingInput) (*models.SubmitResponse, error) {
	candidate, err := c.Rules.Check(in)
	if err != nil {
		return nil, err
	}

	existing, err := c.Repo.ListByDate(ctx, candidate.Date)
	if err != nil {
		c.Logger.Error("failed to load same-date bookings", zap.String("date", candidate.Date), zap.Error(err))
		return nil, readFailure(err)
	}

	conflicts := FindOverlaps(candidate, existing)
	if len(conflicts) == 0 {
		return c.store(ctx, candidate)
	}

	pending := models.PendingBooking{
		ID:        uuid.New().String(),
		Booking:   candidate,
		Conflicts: conflicts,
		CreatedAt: c.Now(),
	}
	if err := c.Pending.Save(ctx, pending, c.PendingTTL); err != nil {
		return nil, fmt.Errorf("failed to hold booking for confirmation: %w", err)
	}
	c.Logger.Info("booking overlaps existing bookings, awaiting confirmation",
		zap.String("pendingID", pending.ID),
		zap.String("date", candidate.Date),
		zap.Int("conflicts", len(conflicts)))

	return &models.SubmitResponse{
		Status:    models.SubmitStatusConfirmationRequired,
		PendingID: pending.ID,
		Conflicts: conflicts,
		Message:   "a conflicting booking already exists at this time; confirm to proceed",
	}, nil
}

// Confirm stores a parked booking the user accepted despite the overlap.
func (c *Controller) Confirm(ctx context.Context, pendingID string) (*models.SubmitResponse, error) {
	pending, err := c.Pending.Take(ctx, pendingID)
	if err != nil {
		return nil, err
	}
	return c.store(ctx, pending.Booking)
}

// Decline drops a parked booking. Nothing is stored and it is not an error.
func (c *Controller) Decline(ctx context.Context, pendingID string) (*models.SubmitResponse, error) {
	if err := c.Pending.Delete(ctx, pendingID); err != nil {
		return nil, err
	}
	c.Logger.Info("pending booking declined", zap.String("pendingID", pendingID))
	return &models.SubmitResponse{Status: models.SubmitStatusDeclined}, nil
}

func (c *Controller) store(ctx context.Context, b models.Booking) (*models.SubmitResponse, error) {
	if err := c.Repo.Insert(ctx, &b); err != nil {
		c.Logger.Error("failed to save booking", zap.Error(err))
		return nil, writeFailure(err)
	}
	c.Logger.Info("booking saved",
		zap.String("id", b.ID),
		zap.String("date", b.Date),
		zap.String("start", b.StartTime),
		zap.String("end", b.EndTime))

	if c.Reminders != nil {
		if err := c.Reminders.ScheduleReminder(ctx, b); err != nil {
			c.Logger.Warn("failed to schedule reminder", zap.String("id", b.ID), zap.Error(err))
		}
	}

	schedule, err := c.LoadAndRender(ctx)
	if err != nil {
		// The insert went through; report it and let the next load catch up.
		c.Logger.Warn("reload after insert failed", zap.String("id", b.ID), zap.Error(err))
		return &models.SubmitResponse{Status: models.SubmitStatusCreated, Booking: &b, Message: err.Error()}, nil
	}
	return &models.SubmitResponse{
		Status:   models.SubmitStatusCreated,
		Booking:  &b,
		Schedule: schedule,
	}, nil
}
