// File: classbook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	ListBookings    gin.HandlerFunc
	CreateBooking   gin.HandlerFunc
	ConfirmPending  gin.HandlerFunc
	DeclinePending  gin.HandlerFunc
	BookingDetail   gin.HandlerFunc
	CalendarFeed    gin.HandlerFunc
	CalendarOptions gin.HandlerFunc

	// Health endpoint
	Health gin.HandlerFunc
}

// NewHandlerBundle wires the booking handler methods into a bundle.
func NewHandlerBundle(bh *BookingHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		ListBookings:    bh.ListBookings,
		CreateBooking:   bh.CreateBooking,
		ConfirmPending:  bh.ConfirmPending,
		DeclinePending:  bh.DeclinePending,
		BookingDetail:   bh.BookingDetail,
		CalendarFeed:    bh.CalendarFeed,
		CalendarOptions: bh.CalendarOptions,
		Health:          health.Health,
	}
}
