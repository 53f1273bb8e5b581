package tasks

import (
	"classbook/models"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler enqueues one reminder per booking, Lead before it starts.
type ReminderScheduler struct {
	Client   Enqueuer
	Lead     time.Duration
	Location *time.Location
	Now      func() time.Time
}

func NewReminderScheduler(client Enqueuer, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{Client: client, Lead: lead, Location: time.Local, Now: time.Now}
}

// ScheduleReminder enqueues the reminder for b. Bookings whose reminder time
// has already passed are skipped.
func (s *ReminderScheduler) ScheduleReminder(ctx context.Context, b models.Booking) error {
	startsAt, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+truncateClock(b.StartTime), s.Location)
	if err != nil {
		return fmt.Errorf("reminder time for booking %s: %w", b.ID, err)
	}
	fireAt := startsAt.Add(-s.Lead)
	if !fireAt.After(s.Now()) {
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{
		BookingID: b.ID,
		Teacher:   b.Teacher,
		ClassName: b.ClassName,
		Date:      b.Date,
		StartTime: truncateClock(b.StartTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}

func truncateClock(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
