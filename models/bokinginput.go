package models

// BookingInput holds the five booking form fields as submitted.
type BookingInput struct {
	Teacher   string `json:"teacher"`    // Teacher name.
	ClassName string `json:"class_name"` // Class (turma) name.
	Date      string `json:"date"`       // Booking date (YYYY-MM-DD).
	StartTime string `json:"start_time"` // Start time (HH:MM).
	EndTime   string `json:"end_time"`   // End time (HH:MM).
}
