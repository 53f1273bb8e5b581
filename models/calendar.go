package models

// TableRow is one line of the bookings table, already formatted for display.
type TableRow struct {
	Teacher   string `json:"teacher"`
	ClassName string `json:"class_name"`
	Date      string `json:"date"`       // "DD/MM/YYYY"
	StartTime string `json:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time"`   // "HH:MM"
}

// CalendarEvent is the event shape consumed by the calendar widget.
type CalendarEvent struct {
	Title         string   `json:"title"`
	Start         string   `json:"start"` // "YYYY-MM-DDTHH:MM", wall clock
	End           string   `json:"end"`
	ExtendedProps *Booking `json:"extendedProps,omitempty"`
	Placeholder   bool     `json:"placeholder,omitempty"`
}

// BookingDetail is the content of the booking detail popup.
type BookingDetail struct {
	Heading   string `json:"heading"`
	Teacher   string `json:"teacher"`
	ClassName string `json:"class_name"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type HeaderToolbar struct {
	Left   string `json:"left"`
	Center string `json:"center"`
	Right  string `json:"right"`
}

type ViewOptions struct {
	ButtonText string `json:"buttonText,omitempty"`
}

// CalendarOptions configures the calendar widget for a given viewport.
type CalendarOptions struct {
	InitialView      string                 `json:"initialView"`
	Locale           string                 `json:"locale"`
	HeaderToolbar    HeaderToolbar          `json:"headerToolbar"`
	Views            map[string]ViewOptions `json:"views,omitempty"`
	ButtonText       map[string]string      `json:"buttonText,omitempty"`
	Height           string                 `json:"height"`
	DisplayEventTime bool                   `json:"displayEventTime"`
	EventDisplay     string                 `json:"eventDisplay"`
	DayMaxEventRows  int                    `json:"dayMaxEventRows"`
	MoreLinkClick    string                 `json:"moreLinkClick"`
}

// Schedule is everything a client needs to draw the table and the calendar.
type Schedule struct {
	Rows     []TableRow       `json:"rows"`
	Events   []CalendarEvent  `json:"events"`
	Calendar *CalendarOptions `json:"calendar,omitempty"`
}
