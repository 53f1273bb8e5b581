// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"classbook/models"
)

// BookingRepository is the gateway to the bookings table. Listing returns
// records ordered by date then start time, both ascending; records that fail
// the boundary checks in record.go never leave the gateway.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListByDate(ctx context.Context, date string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
}
