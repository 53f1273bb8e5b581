// models/booking_response.go
package models

// Submit outcomes.
const (
	SubmitStatusCreated              = "created"
	SubmitStatusConfirmationRequired = "confirmation_required"
	SubmitStatusDeclined             = "declined"
)

// SubmitResponse is returned by the booking submission endpoints.
// It either carries a pending confirmation (when the candidate overlaps
// existing bookings) or the stored booking with the refreshed schedule.
type SubmitResponse struct {
	Status string `json:"status"`
	// PendingID is set when the user still has to confirm the overlap.
	PendingID string    `json:"pending_id,omitempty"`
	Conflicts []Booking `json:"conflicts,omitempty"`
	Message   string    `json:"message,omitempty"`
	// Booking and Schedule are set once the booking is stored.
	Booking  *Booking  `json:"booking,omitempty"`
	Schedule *Schedule `json:"schedule,omitempty"`
}
