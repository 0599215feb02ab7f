package scheduling

import "bookhive/models"

// MatchedStaff pairs a staff member with the skill record that matched, so
// downstream code can resolve the effective duration without re-scanning.
type MatchedStaff struct {
	Staff models.StaffMember
	Skill models.Skill
}

// MatchStaffForService filters the roster down to active staff members who
// declare a skill for the service that is not explicitly disabled. The
// roster order is preserved.
func MatchStaffForService(roster []models.StaffMember, serviceID string) []MatchedStaff {
	var matched []MatchedStaff
	for _, staff := range roster {
		if !staff.Active {
			continue
		}
		skill, ok := staff.SkillFor(serviceID)
		if !ok || !skill.Capable() {
			continue
		}
		matched = append(matched, MatchedStaff{Staff: staff, Skill: skill})
	}
	return matched
}

// EffectiveDuration resolves the duration that applies when this skill
// performs the service: the staff-specific override when present, else the
// service default.
func EffectiveDuration(skill models.Skill, service *models.Service) int {
	if skill.DurationOverride != nil && *skill.DurationOverride > 0 {
		return *skill.DurationOverride
	}
	return service.BaseDuration
}
