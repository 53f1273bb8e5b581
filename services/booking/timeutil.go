package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatDisplayDate turns "YYYY-MM-DD" into "DD/MM/YYYY".
// Empty input yields "", and anything that is not three dash-separated
// parts is returned untouched.
func FormatDisplayDate(iso string) string {
	if iso == "" {
		return ""
	}
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// ToLocalDateTime joins a date and a wall-clock time into "YYYY-MM-DDTHH:MM".
//
// The instant is built from its numeric parts on UTC, which has no offset
// and no daylight saving, so the result is the same wall clock on every host
// and never slides into a neighbouring day.
func ToLocalDateTime(dateYMD, timeHM string) (string, error) {
	y, m, d, err := parseDateParts(dateYMD)
	if err != nil {
		return "", err
	}
	hh, mm, err := parseClock(timeHM)
	if err != nil {
		return "", err
	}
	dt := time.Date(y, time.Month(m), d, hh, mm, 0, 0, time.UTC)
	if dt.Year() != y || int(dt.Month()) != m || dt.Day() != d {
		return "", fmt.Errorf("invalid date %q", dateYMD)
	}
	return fmt.Sprintf("%d-%02d-%02dT%02d:%02d", dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute()), nil
}

// MinutesSinceMidnight converts "HH:MM" (or "HH:MM:SS") into hour*60+minute.
func MinutesSinceMidnight(timeHM string) (int, error) {
	hh, mm, err := parseClock(timeHM)
	if err != nil {
		return 0, err
	}
	return hh*60 + mm, nil
}

// TruncateTime keeps the "HH:MM" part of a stored time.
func TruncateTime(t string) string {
	if len(t) <= 5 {
		return t
	}
	return t[:5]
}

// StorageTime renders a validated "HH:MM" as the "HH:MM:SS" form the store keeps.
func StorageTime(timeHM string) string {
	return TruncateTime(timeHM) + ":00"
}

// Weekday returns the weekday of a calendar date, independent of the host zone.
func Weekday(dateYMD string) (time.Weekday, error) {
	d, err := time.Parse(dateLayout, dateYMD)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", dateYMD, err)
	}
	return d.Weekday(), nil
}

func parseDateParts(dateYMD string) (int, int, int, error) {
	parts := strings.Split(dateYMD, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q", dateYMD)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid date %q", dateYMD)
		}
		nums[i] = n
	}
	if nums[1] < 1 || nums[1] > 12 || nums[2] < 1 || nums[2] > 31 {
		return 0, 0, 0, fmt.Errorf("invalid date %q", dateYMD)
	}
	return nums[0], nums[1], nums[2], nil
}

// parseClock accepts "HH:MM" and "HH:MM:SS"; seconds are ignored.
func parseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 2 || hh < 0 || hh > 23 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || mm < 0 || mm > 59 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	if len(parts) == 3 {
		ss, err := strconv.Atoi(parts[2])
		if err != nil || len(parts[2]) != 2 || ss < 0 || ss > 59 {
			return 0, 0, fmt.Errorf("invalid time %q", s)
		}
	}
	return hh, mm, nil
}
