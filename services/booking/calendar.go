package booking

import (
	"fmt"
	"time"

	"classbook/models"

	"go.uber.org/zap"
)

const (
	defaultEventStart = "07:00"
	defaultEventEnd   = "08:00"

	PlaceholderTitle = "No bookings"
	detailHeading    = "Booking details"

	ViewGrid = "dayGridMonth"
	ViewList = "listMonth"

	DefaultMobileBreakpoint = 768
)

// ToCalendarEvent maps a stored booking onto the calendar widget's event
// shape. A missing time falls back to the 07:00-08:00 slot.
func ToCalendarEvent(b models.Booking) (models.CalendarEvent, error) {
	start := TruncateTime(b.StartTime)
	if start == "" {
		start = defaultEventStart
	}
	end := TruncateTime(b.EndTime)
	if end == "" {
		end = defaultEventEnd
	}

	startAt, err := ToLocalDateTime(b.Date, start)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event start for %s: %w", b.Date, err)
	}
	endAt, err := ToLocalDateTime(b.Date, end)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("event end for %s: %w", b.Date, err)
	}

	props := b
	return models.CalendarEvent{
		Title:         fmt.Sprintf("%s - %s", b.ClassName, b.Teacher),
		Start:         startAt,
		End:           endAt,
		ExtendedProps: &props,
	}, nil
}

// BuildEvents maps every booking to an event. A booking that cannot be
// mapped is skipped with a warning. When nothing maps, a single placeholder
// on today's date keeps the calendar from rendering blank; the placeholder
// carries no booking and must never be stored.
func BuildEvents(bookings []models.Booking, today time.Time, logger *zap.Logger) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		ev, err := ToCalendarEvent(b)
		if err != nil {
			logger.Warn("skipping booking that cannot be shown on the calendar",
				zap.String("id", b.ID),
				zap.String("date", b.Date),
				zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	if len(events) > 0 {
		return events
	}

	day := today.Format(dateLayout)
	return []models.CalendarEvent{{
		Title:       PlaceholderTitle,
		Start:       day + "T09:00",
		End:         day + "T09:30",
		Placeholder: true,
	}}
}

func ToTableRow(b models.Booking) models.TableRow {
	return models.TableRow{
		Teacher:   b.Teacher,
		ClassName: b.ClassName,
		Date:      FormatDisplayDate(b.Date),
		StartTime: TruncateTime(b.StartTime),
		EndTime:   TruncateTime(b.EndTime),
	}
}

func BuildRows(bookings []models.Booking) []models.TableRow {
	rows := make([]models.TableRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, ToTableRow(b))
	}
	return rows
}

// ToDetail renders the booking detail popup from an event's extendedProps.
func ToDetail(b models.Booking) models.BookingDetail {
	return models.BookingDetail{
		Heading:   detailHeading,
		Teacher:   b.Teacher,
		ClassName: b.ClassName,
		Date:      FormatDisplayDate(b.Date),
		StartTime: TruncateTime(b.StartTime),
		EndTime:   TruncateTime(b.EndTime),
	}
}

// ViewForWidth picks the list view at or below the mobile breakpoint and the
// month grid above it.
func ViewForWidth(width, breakpoint int) string {
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	if width > 0 && width <= breakpoint {
		return ViewList
	}
	return ViewGrid
}

// CalendarOptionsFor returns the widget configuration for a viewport width.
func CalendarOptionsFor(width, breakpoint int, locale string) *models.CalendarOptions {
	view := ViewForWidth(width, breakpoint)
	return &models.CalendarOptions{
		InitialView: view,
		Locale:      locale,
		HeaderToolbar: models.HeaderToolbar{
			Left:   "prev,next today",
			Center: "title",
			Right:  view,
		},
		Views:            map[string]models.ViewOptions{ViewList: {ButtonText: "List"}},
		ButtonText:       map[string]string{"today": "Today"},
		Height:           "auto",
		DisplayEventTime: true,
		EventDisplay:     "block",
		DayMaxEventRows:  3,
		MoreLinkClick:    "popover",
	}
}
