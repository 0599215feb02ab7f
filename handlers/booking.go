package handlers

import (
	"net/http"

	"bookhive/models"
	"bookhive/services/scheduling"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and status transitions.
type BookingHandler struct {
	Engine scheduling.Engine
}

func NewBookingHandler(engine scheduling.Engine) *BookingHandler {
	return &BookingHandler{Engine: engine}
}

// CreateBooking creates a pending booking.
// POST /api/tenants/:tenantID/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID := c.Param("tenantID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	booking, err := h.Engine.CreateBooking(c.Request.Context(), tenantID, req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ConfirmBooking transitions a pending booking to confirmed.
// POST /api/tenants/:tenantID/bookings/:bookingID/confirm
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	booking, err := h.Engine.ConfirmBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking transitions a booking to cancelled, freeing its interval.
// POST /api/tenants/:tenantID/bookings/:bookingID/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.Engine.CancelBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CompleteBooking transitions a confirmed booking to completed.
// POST /api/tenants/:tenantID/bookings/:bookingID/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	booking, err := h.Engine.CompleteBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
