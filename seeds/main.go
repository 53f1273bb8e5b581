package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"classbook/config"
	"classbook/database"
	"classbook/models"
	"classbook/services/booking"
	"classbook/utils"

	"go.uber.org/zap"
)

const seedDays = 10

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, closeStore, err := database.OpenBookingStore(logger)
	if err != nil {
		logger.Fatal("seed: failed to open booking store", zap.Error(err))
	}
	defer closeStore()

	rules, err := booking.RulesFromWindow(config.AppConfig.WindowStart, config.AppConfig.WindowEnd)
	if err != nil {
		logger.Fatal("seed: invalid booking window", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	inputs := sampleBookings(time.Now(), seedDays, rng)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted := 0
	for _, in := range inputs {
		existing, err := store.ListByDate(ctx, in.Date)
		if err != nil {
			logger.Fatal("seed: failed to read bookings", zap.String("date", in.Date), zap.Error(err))
		}
		res, err := rules.Validate(in, existing)
		if err != nil {
			logger.Debug("seed: skipping sample", zap.Any("input", in), zap.Error(err))
			continue
		}
		if res.HasOverlap() {
			continue
		}
		b := res.Booking
		if err := store.Insert(ctx, &b); err != nil {
			logger.Fatal("seed: failed to insert booking", zap.Error(err))
		}
		inserted++
	}
	logger.Info("seed: done", zap.Int("generated", len(inputs)), zap.Int("inserted", inserted))
}

var (
	teachers = []string{"Ana Souza", "Rui Lima", "Carla Mendes", "Paulo Reis", "Joana Prado"}
	classes  = []string{"1A", "1B", "2A", "2B", "3A", "3B"}
)

// sampleBookings builds up to three one-hour bookings per weekday for the
// next days, starting on whole hours inside 07:00-17:00.
func sampleBookings(from time.Time, days int, rng *rand.Rand) []models.BookingInput {
	var out []models.BookingInput
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for n := rng.Intn(4); n > 0; n-- {
			hour := 7 + rng.Intn(10)
			out = append(out, models.BookingInput{
				Teacher:   teachers[rng.Intn(len(teachers))],
				ClassName: classes[rng.Intn(len(classes))],
				Date:      day.Format("2006-01-02"),
				StartTime: fmt.Sprintf("%02d:00", hour),
				EndTime:   fmt.Sprintf("%02d:00", hour+1),
			})
		}
	}
	return out
}
