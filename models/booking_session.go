package models

import "time"

// PendingBooking holds a validated candidate that overlaps existing bookings
// until the user confirms or declines it.
type PendingBooking struct {
	ID        string    `json:"id"`
	Booking   Booking   `json:"booking"`
	Conflicts []Booking `json:"conflicts"`
	CreatedAt time.Time `json:"created_at"`
}
