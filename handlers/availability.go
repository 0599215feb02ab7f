package handlers

import (
	"net/http"
	"strconv"

	"bookhive/services/scheduling"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the read side of the scheduling engine.
type AvailabilityHandler struct {
	Engine scheduling.Engine
}

func NewAvailabilityHandler(engine scheduling.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetTimeSlots returns the bookable start times for one staff member.
// GET /api/tenants/:tenantID/staff/:staffID/slots?date=2026-09-01&duration=30
func (h *AvailabilityHandler) GetTimeSlots(c *gin.Context) {
	staffID := c.Param("staffID")
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil || duration <= 0 || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and a positive duration are required"})
		return
	}

	slots, err := h.Engine.GenerateTimeSlots(c.Request.Context(), staffID, date, duration)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CheckStaffAvailability answers whether one staff member is free at a time.
// GET /api/tenants/:tenantID/staff/:staffID/availability?date=...&start_time=14:15&duration=30
func (h *AvailabilityHandler) CheckStaffAvailability(c *gin.Context) {
	staffID := c.Param("staffID")
	date := c.Query("date")
	startTime := c.Query("start_time")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil || duration <= 0 || date == "" || startTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start_time and a positive duration are required"})
		return
	}

	result, err := h.Engine.IsStaffAvailableAt(c.Request.Context(), staffID, date, startTime, duration)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListAvailableStaff returns staff able to perform a service at a time.
// GET /api/tenants/:tenantID/availability/staff?service_id=...&date=...&start_time=...&duration=
func (h *AvailabilityHandler) ListAvailableStaff(c *gin.Context) {
	tenantID := c.Param("tenantID")
	serviceID := c.Query("service_id")
	date := c.Query("date")
	startTime := c.Query("start_time")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if err != nil || serviceID == "" || date == "" || startTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_id, date and start_time are required"})
		return
	}

	staff, err := h.Engine.ListAvailableStaffForService(c.Request.Context(), tenantID, serviceID, date, startTime, duration)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}
