package booking

import (
	"testing"
	"time"

	"classbook/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestToCalendarEvent(t *testing.T) {
	b := models.Booking{ID: "x", Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "09:00:00", EndTime: "10:30:00"}
	ev, err := ToCalendarEvent(b)
	if err != nil {
		t.Fatalf("ToCalendarEvent() error = %v", err)
	}
	if ev.Title != "3A - Ana" {
		t.Errorf("Title = %q", ev.Title)
	}
	if ev.Start != "2025-09-23T09:00" || ev.End != "2025-09-23T10:30" {
		t.Errorf("Start/End = %s/%s", ev.Start, ev.End)
	}
	if ev.ExtendedProps == nil || *ev.ExtendedProps != b {
		t.Errorf("ExtendedProps = %+v", ev.ExtendedProps)
	}
	if ev.Placeholder {
		t.Error("booking event flagged as placeholder")
	}
}

func TestToCalendarEventDefaultsMissingTimes(t *testing.T) {
	ev, err := ToCalendarEvent(models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23"})
	if err != nil {
		t.Fatalf("ToCalendarEvent() error = %v", err)
	}
	if ev.Start != "2025-09-23T07:00" || ev.End != "2025-09-23T08:00" {
		t.Fatalf("Start/End = %s/%s, want 07:00/08:00", ev.Start, ev.End)
	}
}

func TestBuildEventsPlaceholder(t *testing.T) {
	today := time.Date(2025, 9, 23, 15, 4, 0, 0, time.UTC)
	events := BuildEvents(nil, today, zap.NewNop())
	if len(events) != 1 {
		t.Fatalf("expected one placeholder, got %d", len(events))
	}
	ev := events[0]
	if !ev.Placeholder || ev.Title != PlaceholderTitle || ev.ExtendedProps != nil {
		t.Errorf("placeholder = %+v", ev)
	}
	if ev.Start != "2025-09-23T09:00" || ev.End != "2025-09-23T09:30" {
		t.Errorf("placeholder slot = %s/%s", ev.Start, ev.End)
	}
}

func TestBuildEventsKeepsOrder(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "08:00:00", EndTime: "09:00:00"},
		{ID: "2", Teacher: "Rui", ClassName: "2B", Date: "2025-09-24", StartTime: "07:00:00", EndTime: "07:30:00"},
	}
	events := BuildEvents(bookings, time.Now(), zap.NewNop())
	if len(events) != 2 || events[0].ExtendedProps.ID != "1" || events[1].ExtendedProps.ID != "2" {
		t.Fatalf("events = %+v", events)
	}
}

func TestBuildEventsSkipsUnmappableBookings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	bookings := []models.Booking{
		{ID: "bad-date", Teacher: "Ana", ClassName: "3A", Date: "2025-02-30", StartTime: "08:00:00"},
		{ID: "bad-hour", Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "7:00:00"},
		{ID: "ok", Teacher: "Rui", ClassName: "2B", Date: "2025-09-23", StartTime: "09:00:00", EndTime: "10:00:00"},
	}
	events := BuildEvents(bookings, time.Now(), zap.New(core))
	if len(events) != 1 || events[0].ExtendedProps == nil || events[0].ExtendedProps.ID != "ok" {
		t.Fatalf("events = %+v, want only ok", events)
	}
	if logs.Len() != 2 {
		t.Fatalf("expected 2 warnings, got %d", logs.Len())
	}
}

func TestBuildEventsPlaceholderWhenNothingMaps(t *testing.T) {
	today := time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC)
	events := BuildEvents([]models.Booking{{Date: "2025-02-30"}}, today, zap.NewNop())
	if len(events) != 1 || !events[0].Placeholder {
		t.Fatalf("events = %+v, want the placeholder", events)
	}
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows([]models.Booking{
		{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "09:00:00", EndTime: "10:00:00"},
	})
	want := models.TableRow{Teacher: "Ana", ClassName: "3A", Date: "23/09/2025", StartTime: "09:00", EndTime: "10:00"}
	if len(rows) != 1 || rows[0] != want {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	if got := BuildRows(nil); got == nil || len(got) != 0 {
		t.Fatalf("BuildRows(nil) = %#v, want empty slice", got)
	}
}

func TestToDetail(t *testing.T) {
	d := ToDetail(models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "09:00:00", EndTime: "10:00:00"})
	if d.Heading != "Booking details" || d.Date != "23/09/2025" || d.StartTime != "09:00" || d.EndTime != "10:00" {
		t.Fatalf("detail = %+v", d)
	}
}

func TestViewForWidth(t *testing.T) {
	cases := []struct {
		width, breakpoint int
		want              string
	}{
		{0, 768, ViewGrid},
		{375, 768, ViewList},
		{768, 768, ViewList},
		{769, 768, ViewGrid},
		{1280, 0, ViewGrid},
		{500, 0, ViewList},
	}
	for _, tc := range cases {
		if got := ViewForWidth(tc.width, tc.breakpoint); got != tc.want {
			t.Errorf("ViewForWidth(%d, %d) = %s, want %s", tc.width, tc.breakpoint, got, tc.want)
		}
	}
}

func TestCalendarOptionsFor(t *testing.T) {
	opts := CalendarOptionsFor(375, 768, "pt-br")
	if opts.InitialView != ViewList || opts.HeaderToolbar.Right != ViewList {
		t.Errorf("mobile view = %s/%s", opts.InitialView, opts.HeaderToolbar.Right)
	}
	if opts.Locale != "pt-br" || opts.DayMaxEventRows != 3 || opts.MoreLinkClick != "popover" || opts.Height != "auto" {
		t.Errorf("options = %+v", opts)
	}
	if desktop := CalendarOptionsFor(1280, 768, "pt-br"); desktop.InitialView != ViewGrid {
		t.Errorf("desktop view = %s", desktop.InitialView)
	}
}
