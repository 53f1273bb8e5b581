package models

// ReminderPayload is the body of a booking reminder task.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Teacher   string `json:"teacher"`
	ClassName string `json:"className"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	FireDate  string `json:"fireDate"`
}
