package staff

import (
	"context"
	"fmt"
	"time"

	"bookhive/models"

	"github.com/google/uuid"
)

func (s *DefaultStaffService) GetStaff(ctx context.Context, id string) (*models.StaffMember, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultStaffService) ListStaff(ctx context.Context, tenantID string) ([]models.StaffMember, error) {
	return s.Repo.ListByTenant(ctx, tenantID)
}

func (s *DefaultStaffService) CreateStaff(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error) {
	if staff.TenantID == "" {
		return nil, fmt.Errorf("staff record requires a tenant")
	}
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	staff.CreatedAt = time.Now()

	if err := s.Repo.Create(ctx, staff); err != nil {
		return nil, err
	}
	s.invalidate(staff.TenantID, staff.ID)
	return staff, nil
}

func (s *DefaultStaffService) UpdateStaff(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error) {
	if err := s.Repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	s.invalidate(staff.TenantID, staff.ID)
	return staff, nil
}

func (s *DefaultStaffService) DeleteStaff(ctx context.Context, tenantID, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(tenantID, id)
	return nil
}

// SetSkill adds or replaces the skill record for one service.
func (s *DefaultStaffService) SetSkill(ctx context.Context, tenantID, staffID string, skill models.Skill) (*models.StaffMember, error) {
	staff, err := s.Repo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff.TenantID != tenantID {
		return nil, fmt.Errorf("staff %s does not belong to tenant %s", staffID, tenantID)
	}

	replaced := false
	for i := range staff.Skills {
		if staff.Skills[i].ServiceID == skill.ServiceID {
			staff.Skills[i] = skill
			replaced = true
			break
		}
	}
	if !replaced {
		staff.Skills = append(staff.Skills, skill)
	}

	if err := s.Repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	s.invalidate(tenantID, staffID)
	return staff, nil
}

func (s *DefaultStaffService) RemoveSkill(ctx context.Context, tenantID, staffID, serviceID string) (*models.StaffMember, error) {
	staff, err := s.Repo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff.TenantID != tenantID {
		return nil, fmt.Errorf("staff %s does not belong to tenant %s", staffID, tenantID)
	}

	skills := staff.Skills[:0]
	for _, sk := range staff.Skills {
		if sk.ServiceID != serviceID {
			skills = append(skills, sk)
		}
	}
	staff.Skills = skills

	if err := s.Repo.Update(ctx, staff); err != nil {
		return nil, err
	}
	s.invalidate(tenantID, staffID)
	return staff, nil
}

func (s *DefaultStaffService) invalidate(tenantID, staffID string) {
	if s.Cache != nil {
		s.Cache.InvalidateStaff(tenantID, staffID)
	}
}
