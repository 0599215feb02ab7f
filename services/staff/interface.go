package staff

import (
	"context"

	staffRepo "bookhive/database/repository/staff"
	"bookhive/models"
	"bookhive/services/scheduling"
)

// StaffService manages staff records and their skills. Every write
// invalidates the availability cache so stale rosters and slot lists are
// never served after a roster change.
type StaffService interface {
	GetStaff(ctx context.Context, id string) (*models.StaffMember, error)
	ListStaff(ctx context.Context, tenantID string) ([]models.StaffMember, error)
	CreateStaff(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error)
	UpdateStaff(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error)
	DeleteStaff(ctx context.Context, tenantID, id string) error
	SetSkill(ctx context.Context, tenantID, staffID string, skill models.Skill) (*models.StaffMember, error)
	RemoveSkill(ctx context.Context, tenantID, staffID, serviceID string) (*models.StaffMember, error)
}

// DefaultStaffService implements StaffService.
type DefaultStaffService struct {
	Repo  staffRepo.StaffRepository
	Cache *scheduling.AvailabilityCache
}
