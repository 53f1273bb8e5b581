package bookingRepo

import (
	"time"

	"classbook/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
		return isClockTime(fl.Field().String())
	})
	return v
}

// isClockTime accepts zero-padded "HH:MM" and "HH:MM:SS" only. The "15"
// layout alone would also let a one-digit hour through.
func isClockTime(s string) bool {
	var layout string
	switch len(s) {
	case len("15:04"):
		layout = "15:04"
	case len("15:04:05"):
		layout = "15:04:05"
	default:
		return false
	}
	_, err := time.Parse(layout, s)
	return err == nil
}

// CheckRecord validates a raw record against the Booking structure.
func CheckRecord(b models.Booking) error {
	return recordValidator.Struct(b)
}

// keepValid drops records that do not satisfy CheckRecord, logging each one.
func keepValid(records []models.Booking, logger *zap.Logger) []models.Booking {
	valid := make([]models.Booking, 0, len(records))
	for _, r := range records {
		if err := CheckRecord(r); err != nil {
			logger.Warn("dropping malformed booking record",
				zap.String("id", r.ID),
				zap.String("date", r.Date),
				zap.Error(err))
			continue
		}
		valid = append(valid, r)
	}
	return valid
}

// prepareInsert fills the store-assigned fields.
func prepareInsert(b *models.Booking, now time.Time) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
}
