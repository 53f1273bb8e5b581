package booking

import (
	"fmt"
	"strings"
	"time"

	"classbook/models"
)

// Rules holds the permitted daily window, in minutes since midnight.
// Both bounds are inclusive.
type Rules struct {
	WindowStart int
	WindowEnd   int
}

func DefaultRules() Rules {
	return Rules{WindowStart: 7 * 60, WindowEnd: 18 * 60}
}

// RulesFromWindow builds Rules from "HH:MM" bounds.
func RulesFromWindow(start, end string) (Rules, error) {
	s, err := MinutesSinceMidnight(start)
	if err != nil {
		return Rules{}, fmt.Errorf("window start: %w", err)
	}
	e, err := MinutesSinceMidnight(end)
	if err != nil {
		return Rules{}, fmt.Errorf("window end: %w", err)
	}
	if s >= e {
		return Rules{}, fmt.Errorf("window start %s must be before window end %s", start, end)
	}
	return Rules{WindowStart: s, WindowEnd: e}, nil
}

// Result is a candidate that passed every blocking rule. Overlaps lists the
// same-date bookings it intersects; when non-empty the caller must get an
// explicit confirmation before persisting.
type Result struct {
	Booking  models.Booking
	Overlaps []models.Booking
}

func (r *Result) HasOverlap() bool {
	return len(r.Overlaps) > 0
}

// Validate runs Check and then looks for overlaps with existing bookings.
func (r Rules) Validate(in models.BookingInput, existing []models.Booking) (*Result, error) {
	candidate, err := r.Check(in)
	if err != nil {
		return nil, err
	}
	return &Result{
		Booking:  candidate,
		Overlaps: FindOverlaps(candidate, existing),
	}, nil
}

// Validate checks a candidate with the default 07:00-18:00 window.
func Validate(in models.BookingInput, existing []models.Booking) (*Result, error) {
	return DefaultRules().Validate(in, existing)
}

// Check applies the blocking rules in order and stops at the first failure:
// completeness, time shape, interval, window, then date shape and weekend.
// On success it returns the trimmed booking with times in storage form.
func (r Rules) Check(in models.BookingInput) (models.Booking, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"teacher", strings.TrimSpace(in.Teacher)},
		{"class_name", strings.TrimSpace(in.ClassName)},
		{"date", strings.TrimSpace(in.Date)},
		{"start_time", strings.TrimSpace(in.StartTime)},
		{"end_time", strings.TrimSpace(in.EndTime)},
	}
	for _, f := range fields {
		if f.value == "" {
			return models.Booking{}, newValidationError(KindMissingField, f.name, "fill in all fields")
		}
	}
	teacher, className, date, start, end := fields[0].value, fields[1].value, fields[2].value, fields[3].value, fields[4].value

	startMin, err := MinutesSinceMidnight(start)
	if err != nil {
		return models.Booking{}, newValidationError(KindMalformedField, "start_time", "start time must be HH:MM")
	}
	endMin, err := MinutesSinceMidnight(end)
	if err != nil {
		return models.Booking{}, newValidationError(KindMalformedField, "end_time", "end time must be HH:MM")
	}

	if startMin >= endMin {
		return models.Booking{}, newValidationError(KindInvalidInterval, "end_time", "end time must be after start time")
	}

	if startMin < r.WindowStart || endMin > r.WindowEnd {
		msg := fmt.Sprintf("time outside the allowed period (%s to %s)", clockLabel(r.WindowStart), clockLabel(r.WindowEnd))
		return models.Booking{}, newValidationError(KindOutsideAllowedWindow, "start_time", msg)
	}

	// Date shape is checked with the weekend rule, after the times.
	wd, err := Weekday(date)
	if err != nil {
		return models.Booking{}, newValidationError(KindMalformedField, "date", "date must be YYYY-MM-DD")
	}
	if wd == time.Saturday || wd == time.Sunday {
		return models.Booking{}, newValidationError(KindWeekendNotAllowed, "date", "bookings are not allowed on weekends")
	}

	return models.Booking{
		Teacher:   teacher,
		ClassName: className,
		Date:      date,
		StartTime: StorageTime(start),
		EndTime:   StorageTime(end),
	}, nil
}

// FindOverlaps returns the existing same-date bookings whose interval
// intersects the candidate's. A missing or unreadable time on an existing
// booking counts as 00:00.
func FindOverlaps(candidate models.Booking, existing []models.Booking) []models.Booking {
	cStart := minutesOrZero(candidate.StartTime)
	cEnd := minutesOrZero(candidate.EndTime)

	var out []models.Booking
	for _, b := range existing {
		if b.Date != candidate.Date {
			continue
		}
		if Overlaps(minutesOrZero(b.StartTime), minutesOrZero(b.EndTime), cStart, cEnd) {
			out = append(out, b)
		}
	}
	return out
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}

func minutesOrZero(t string) int {
	m, err := MinutesSinceMidnight(TruncateTime(t))
	if err != nil {
		return 0
	}
	return m
}

func clockLabel(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
