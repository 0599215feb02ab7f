package models

import "time"

// Skill records a staff member's capability to perform one service.
type Skill struct {
	ServiceID        string `bson:"service_id" json:"service_id"`
	CanPerform       *bool  `bson:"can_perform,omitempty" json:"can_perform,omitempty"`             // nil means capable
	DurationOverride *int   `bson:"duration_override,omitempty" json:"duration_override,omitempty"` // minutes, overrides the service default
	ExperienceLevel  string `bson:"experience_level,omitempty" json:"experience_level,omitempty"`   // informational only
}

// Capable reports whether the skill allows performing the service.
// An absent flag counts as capable; only an explicit false disables it.
func (s Skill) Capable() bool {
	return s.CanPerform == nil || *s.CanPerform
}

// DaySchedule describes one weekday of a staff member's working hours.
// All times are wall-clock "HH:MM" strings in the tenant's local timezone.
type DaySchedule struct {
	Working    bool   `bson:"working" json:"working"`
	Start      string `bson:"start,omitempty" json:"start,omitempty"`
	End        string `bson:"end,omitempty" json:"end,omitempty"`
	BreakStart string `bson:"break_start,omitempty" json:"break_start,omitempty"`
	BreakEnd   string `bson:"break_end,omitempty" json:"break_end,omitempty"`
}

// HasBreak reports whether the day declares a break window.
func (d DaySchedule) HasBreak() bool {
	return d.BreakStart != "" && d.BreakEnd != ""
}

// WorkSchedule maps lowercase weekday names ("monday".."sunday") to day schedules.
type WorkSchedule map[string]DaySchedule

// StaffMember is a service provider with a weekly schedule and a set of skills.
// Staff records are owned by staff-management operations; the scheduling
// engine treats them as read-only.
type StaffMember struct {
	ID        string       `bson:"id" json:"id"`
	TenantID  string       `bson:"tenant_id" json:"tenant_id"`
	Name      string       `bson:"name" json:"name"`
	Active    bool         `bson:"active" json:"active"`
	Skills    []Skill      `bson:"skills,omitempty" json:"skills,omitempty"`
	Schedule  WorkSchedule `bson:"schedule,omitempty" json:"schedule,omitempty"`
	CreatedAt time.Time    `bson:"created_at" json:"created_at"`
}

// SkillFor returns the staff member's skill record for a service, if declared.
func (m StaffMember) SkillFor(serviceID string) (Skill, bool) {
	for _, sk := range m.Skills {
		if sk.ServiceID == serviceID {
			return sk, true
		}
	}
	return Skill{}, false
}
