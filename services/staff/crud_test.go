package staff

import (
	"context"
	"testing"

	"bookhive/database/repository"
	"bookhive/models"
	"bookhive/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStaffRepo struct {
	members map[string]models.StaffMember
}

func newMemStaffRepo(members ...models.StaffMember) *memStaffRepo {
	r := &memStaffRepo{members: map[string]models.StaffMember{}}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *memStaffRepo) GetByID(_ context.Context, id string) (*models.StaffMember, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := m
	return &cp, nil
}

func (r *memStaffRepo) ListByTenant(_ context.Context, tenantID string) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, m := range r.members {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memStaffRepo) Create(_ context.Context, staff *models.StaffMember) error {
	r.members[staff.ID] = *staff
	return nil
}

func (r *memStaffRepo) Update(_ context.Context, staff *models.StaffMember) error {
	if _, ok := r.members[staff.ID]; !ok {
		return repository.ErrNotFound
	}
	r.members[staff.ID] = *staff
	return nil
}

func (r *memStaffRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.members[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.members, id)
	return nil
}

func newTestService(t *testing.T, members ...models.StaffMember) (*DefaultStaffService, *memStaffRepo, *scheduling.AvailabilityCache) {
	t.Helper()
	repo := newMemStaffRepo(members...)
	cache, err := scheduling.NewAvailabilityCache(scheduling.CacheConfig{Size: 16})
	require.NoError(t, err)
	return &DefaultStaffService{Repo: repo, Cache: cache}, repo, cache
}

func TestCreateStaff(t *testing.T) {
	svc, repo, _ := newTestService(t)

	created, err := svc.CreateStaff(context.Background(), &models.StaffMember{
		TenantID: "t1", Name: "Amira", Active: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "an id is assigned when absent")
	assert.False(t, created.CreatedAt.IsZero())
	assert.Contains(t, repo.members, created.ID)
}

func TestCreateStaff_RequiresTenant(t *testing.T) {
	svc, repo, _ := newTestService(t)

	_, err := svc.CreateStaff(context.Background(), &models.StaffMember{Name: "Amira"})
	assert.Error(t, err)
	assert.Empty(t, repo.members)
}

func TestSetSkill(t *testing.T) {
	member := models.StaffMember{
		ID: "s1", TenantID: "t1", Name: "Amira", Active: true,
		Skills: []models.Skill{{ServiceID: "haircut"}},
	}
	svc, repo, _ := newTestService(t, member)
	ctx := context.Background()

	t.Run("adds a new skill", func(t *testing.T) {
		updated, err := svc.SetSkill(ctx, "t1", "s1", models.Skill{ServiceID: "massage"})
		require.NoError(t, err)
		assert.Len(t, updated.Skills, 2)
	})

	t.Run("replaces an existing skill", func(t *testing.T) {
		override := 45
		updated, err := svc.SetSkill(ctx, "t1", "s1", models.Skill{
			ServiceID: "haircut", DurationOverride: &override,
		})
		require.NoError(t, err)

		skill, ok := updated.SkillFor("haircut")
		require.True(t, ok)
		require.NotNil(t, skill.DurationOverride)
		assert.Equal(t, 45, *skill.DurationOverride)
		assert.Len(t, repo.members["s1"].Skills, 2, "replace must not duplicate")
	})

	t.Run("rejects cross-tenant access", func(t *testing.T) {
		_, err := svc.SetSkill(ctx, "t2", "s1", models.Skill{ServiceID: "massage"})
		assert.Error(t, err)
	})
}

func TestRemoveSkill(t *testing.T) {
	member := models.StaffMember{
		ID: "s1", TenantID: "t1", Name: "Amira", Active: true,
		Skills: []models.Skill{{ServiceID: "haircut"}, {ServiceID: "massage"}},
	}
	svc, repo, _ := newTestService(t, member)

	updated, err := svc.RemoveSkill(context.Background(), "t1", "s1", "haircut")
	require.NoError(t, err)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "massage", updated.Skills[0].ServiceID)
	assert.Len(t, repo.members["s1"].Skills, 1)
}

// Roster-affecting writes must drop cached availability so a staffing change
// is visible on the next read.
func TestWritesInvalidateAvailabilityCache(t *testing.T) {
	member := models.StaffMember{ID: "s1", TenantID: "t1", Name: "Amira", Active: true}
	svc, _, cache := newTestService(t, member)
	ctx := context.Background()

	seed := func() {
		cache.PutSlots("t1", "s1", "2025-03-10", 30, []string{"09:00"})
		cache.PutRoster("t1", "haircut", []models.AvailableStaff{{StaffID: "s1"}})
	}
	assertDropped := func(t *testing.T) {
		t.Helper()
		_, ok := cache.GetSlots("t1", "s1", "2025-03-10", 30)
		assert.False(t, ok, "slot entry should be dropped")
		_, ok = cache.GetRoster("t1", "haircut")
		assert.False(t, ok, "roster entry should be dropped")
	}

	t.Run("update", func(t *testing.T) {
		seed()
		m := member
		m.Name = "Amira K"
		_, err := svc.UpdateStaff(ctx, &m)
		require.NoError(t, err)
		assertDropped(t)
	})

	t.Run("set skill", func(t *testing.T) {
		seed()
		_, err := svc.SetSkill(ctx, "t1", "s1", models.Skill{ServiceID: "massage"})
		require.NoError(t, err)
		assertDropped(t)
	})

	t.Run("delete", func(t *testing.T) {
		seed()
		require.NoError(t, svc.DeleteStaff(ctx, "t1", "s1"))
		assertDropped(t)
	})
}
