package routes

import (
	"time"

	"classbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the booking, confirmation and calendar endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("", hb.ListBookings)
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.POST("/detail", hb.BookingDetail)
		bookingGroup.GET("/calendar.ics", hb.CalendarFeed)

		// Overlapping submissions wait here for an explicit answer.
		bookingGroup.POST("/pending/:id/confirm", hb.ConfirmPending)
		bookingGroup.DELETE("/pending/:id", hb.DeclinePending)
	}

	r.GET("/api/calendar/options", hb.CalendarOptions)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterBookingRoutes(r, hb)
}
