package scheduling

import (
	"testing"

	"bookhive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestMatchStaffForService(t *testing.T) {
	roster := []models.StaffMember{
		{
			ID: "s1", Name: "Amira", Active: true,
			Skills: []models.Skill{{ServiceID: "haircut"}},
		},
		{
			ID: "s2", Name: "Ben", Active: true,
			Skills: []models.Skill{{ServiceID: "haircut", CanPerform: boolPtr(false)}},
		},
		{
			ID: "s3", Name: "Chen", Active: false,
			Skills: []models.Skill{{ServiceID: "haircut"}},
		},
		{
			ID: "s4", Name: "Dana", Active: true,
			Skills: []models.Skill{{ServiceID: "massage"}},
		},
		{
			ID: "s5", Name: "Eli", Active: true,
			Skills: []models.Skill{
				{ServiceID: "massage"},
				{ServiceID: "haircut", CanPerform: boolPtr(true), DurationOverride: intPtr(45)},
			},
		},
	}

	matched := MatchStaffForService(roster, "haircut")
	require.Len(t, matched, 2)

	// Roster order is preserved.
	assert.Equal(t, "s1", matched[0].Staff.ID)
	assert.Equal(t, "s5", matched[1].Staff.ID)
	assert.Equal(t, "haircut", matched[1].Skill.ServiceID)
	require.NotNil(t, matched[1].Skill.DurationOverride)
	assert.Equal(t, 45, *matched[1].Skill.DurationOverride)
}

func TestMatchStaffForService_NoMatches(t *testing.T) {
	roster := []models.StaffMember{
		{ID: "s1", Active: true, Skills: []models.Skill{{ServiceID: "massage"}}},
	}
	assert.Empty(t, MatchStaffForService(roster, "haircut"))
	assert.Empty(t, MatchStaffForService(nil, "haircut"))
}

func TestEffectiveDuration(t *testing.T) {
	service := &models.Service{ID: "haircut", BaseDuration: 30}

	tests := []struct {
		name     string
		skill    models.Skill
		expected int
	}{
		{"no override uses service default", models.Skill{ServiceID: "haircut"}, 30},
		{"override wins", models.Skill{ServiceID: "haircut", DurationOverride: intPtr(45)}, 45},
		{"zero override is ignored", models.Skill{ServiceID: "haircut", DurationOverride: intPtr(0)}, 30},
		{"negative override is ignored", models.Skill{ServiceID: "haircut", DurationOverride: intPtr(-15)}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EffectiveDuration(tt.skill, service))
		})
	}
}
