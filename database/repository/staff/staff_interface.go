package staffRepo

import (
	"context"

	"bookhive/models"
)

// StaffRepository defines persistence operations for staff members.
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.StaffMember, error)
	Create(ctx context.Context, staff *models.StaffMember) error
	Update(ctx context.Context, staff *models.StaffMember) error
	Delete(ctx context.Context, id string) error
}
