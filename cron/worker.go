package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"classbook/models"
	"classbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a due booking reminder.
type Notifier interface {
	NotifyReminder(ctx context.Context, p models.ReminderPayload) error
}

// LogNotifier writes reminders to the log.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) NotifyReminder(ctx context.Context, p models.ReminderPayload) error {
	n.Logger.Info("booking reminder",
		zap.String("bookingID", p.BookingID),
		zap.String("teacher", p.Teacher),
		zap.String("class", p.ClassName),
		zap.String("date", p.Date),
		zap.String("start", p.StartTime),
		zap.String("fireDate", p.FireDate))
	return nil
}

// StartReminderWorker runs the asynq worker in the background and returns
// the server so the caller can shut it down.
func StartReminderWorker(redisOpt asynq.RedisClientOpt, notifier Notifier, logger *zap.Logger) (*asynq.Server, error) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReminder, HandleReminderTask(notifier, logger))

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("failed to start reminder worker: %w", err)
	}
	logger.Info("reminder worker started", zap.String("redis", redisOpt.Addr), zap.Int("db", redisOpt.DB))
	return srv, nil
}

// HandleReminderTask decodes a reminder task and hands it to the notifier.
func HandleReminderTask(notifier Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			// A malformed payload will never decode; do not retry it.
			return fmt.Errorf("invalid reminder payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := notifier.NotifyReminder(ctx, p); err != nil {
			logger.Warn("failed to deliver reminder", zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
