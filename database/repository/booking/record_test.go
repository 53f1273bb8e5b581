package bookingRepo

import (
	"testing"

	"classbook/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCheckRecord(t *testing.T) {
	cases := []struct {
		name    string
		booking models.Booking
		wantErr bool
	}{
		{"complete", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "07:00:00", EndTime: "08:00:00"}, false},
		{"short times", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "07:00", EndTime: "08:00"}, false},
		{"times optional", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23"}, false},
		{"missing teacher", models.Booking{ClassName: "3A", Date: "2025-09-23"}, true},
		{"missing class", models.Booking{Teacher: "Ana", Date: "2025-09-23"}, true},
		{"missing date", models.Booking{Teacher: "Ana", ClassName: "3A"}, true},
		{"bad date", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "23/09/2025"}, true},
		{"bad time", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "7h"}, true},
		{"one-digit hour", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "7:00"}, true},
		{"one-digit hour with seconds", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "7:00:00"}, true},
		{"one-digit end hour", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "07:00:00", EndTime: "8:00:00"}, true},
		{"impossible date", models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-02-30"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckRecord(tc.booking)
			if (err != nil) != tc.wantErr {
				t.Fatalf("CheckRecord() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestKeepValidLogsDroppedRecords(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	records := []models.Booking{
		{ID: "ok", Teacher: "Ana", ClassName: "3A", Date: "2025-09-23"},
		{ID: "broken", Teacher: "", ClassName: "3A", Date: "2025-09-23"},
	}
	got := keepValid(records, logger)
	if len(got) != 1 || got[0].ID != "ok" {
		t.Fatalf("keepValid() = %+v, want only the valid record", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	if id := logs.All()[0].ContextMap()["id"]; id != "broken" {
		t.Errorf("logged id = %v, want broken", id)
	}
}

func TestIsClockTime(t *testing.T) {
	for s, want := range map[string]bool{
		"07:00":    true,
		"07:00:00": true,
		"23:59:59": true,
		"7:00":     false,
		"7:00:00":  false,
		"07:0":     false,
		"24:00":    false,
		"07:00:0":  false,
		"":         false,
	} {
		if got := isClockTime(s); got != want {
			t.Errorf("isClockTime(%q) = %v, want %v", s, got, want)
		}
	}
}
