package routes

import (
	"bookhive/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, availability *handlers.AvailabilityHandler, booking *handlers.BookingHandler) {
	tenant := r.Group("/api/tenants/:tenantID")
	{
		tenant.GET("/staff/:staffID/slots", availability.GetTimeSlots)
		tenant.GET("/staff/:staffID/availability", availability.CheckStaffAvailability)
		tenant.GET("/availability/staff", availability.ListAvailableStaff)

		tenant.POST("/bookings", booking.CreateBooking)
		tenant.POST("/bookings/:bookingID/confirm", booking.ConfirmBooking)
		tenant.POST("/bookings/:bookingID/cancel", booking.CancelBooking)
		tenant.POST("/bookings/:bookingID/complete", booking.CompleteBooking)
	}
}
