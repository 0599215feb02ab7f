package handlers

import (
	"net/http"

	"bookhive/models"
	"bookhive/services/staff"

	"github.com/gin-gonic/gin"
)

// StaffHandler exposes staff management endpoints.
type StaffHandler struct {
	Svc staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Svc: svc}
}

// ListStaff lists a tenant's staff roster.
// GET /api/tenants/:tenantID/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	roster, err := h.Svc.ListStaff(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if roster == nil {
		roster = []models.StaffMember{}
	}
	c.JSON(http.StatusOK, gin.H{"staff": roster})
}

// GetStaff fetches one staff member.
// GET /api/tenants/:tenantID/staff/:staffID
func (h *StaffHandler) GetStaff(c *gin.Context) {
	member, err := h.Svc.GetStaff(c.Request.Context(), c.Param("staffID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// CreateStaff registers a staff member under the tenant.
// POST /api/tenants/:tenantID/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var member models.StaffMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	member.TenantID = c.Param("tenantID")

	created, err := h.Svc.CreateStaff(c.Request.Context(), &member)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStaff replaces a staff member's record (schedule, active flag, name).
// PUT /api/tenants/:tenantID/staff/:staffID
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var member models.StaffMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	member.ID = c.Param("staffID")
	member.TenantID = c.Param("tenantID")

	updated, err := h.Svc.UpdateStaff(c.Request.Context(), &member)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStaff removes a staff member.
// DELETE /api/tenants/:tenantID/staff/:staffID
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.Svc.DeleteStaff(c.Request.Context(), c.Param("tenantID"), c.Param("staffID")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetSkill adds or replaces one skill on a staff member.
// PUT /api/tenants/:tenantID/staff/:staffID/skills
func (h *StaffHandler) SetSkill(c *gin.Context) {
	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	member, err := h.Svc.SetSkill(c.Request.Context(), c.Param("tenantID"), c.Param("staffID"), skill)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveSkill drops one skill from a staff member.
// DELETE /api/tenants/:tenantID/staff/:staffID/skills/:serviceID
func (h *StaffHandler) RemoveSkill(c *gin.Context) {
	member, err := h.Svc.RemoveSkill(c.Request.Context(), c.Param("tenantID"), c.Param("staffID"), c.Param("serviceID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
