package booking

import (
	"strings"
	"time"

	"classbook/models"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

const icsProductID = "-//classbook//bookings//EN"

// ExportICS renders bookings as an iCalendar feed. Times are written as
// floating local times, matching the wall-clock model of the bookings.
// Bookings that cannot be mapped are left out and logged.
func ExportICS(bookings []models.Booking, stamp time.Time, logger *zap.Logger) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, b := range bookings {
		ev, err := ToCalendarEvent(b)
		if err != nil {
			logger.Warn("leaving booking out of the calendar feed",
				zap.String("id", b.ID),
				zap.String("date", b.Date),
				zap.Error(err))
			continue
		}
		uid := b.ID
		if uid == "" {
			uid = strings.Join([]string{b.Date, b.StartTime, b.ClassName, b.Teacher}, "/")
		}
		event := cal.AddEvent(uid + "@classbook")
		event.SetDtStampTime(stamp)
		event.SetSummary(ev.Title)
		event.SetDescription("Teacher: " + b.Teacher + "\nClass: " + b.ClassName)
		event.SetProperty(ics.ComponentPropertyDtStart, icsFloating(ev.Start))
		event.SetProperty(ics.ComponentPropertyDtEnd, icsFloating(ev.End))
	}
	return cal.Serialize()
}

// icsFloating turns "YYYY-MM-DDTHH:MM" into "YYYYMMDDTHHMM00".
func icsFloating(local string) string {
	return strings.NewReplacer("-", "", ":", "").Replace(local) + "00"
}
