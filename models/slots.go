package models

// AvailableStaff is the skill-matcher annotation returned per candidate:
// the staff identity plus the duration and price that would apply if this
// staff member performed the service. Price is always the service base
// price; staff-specific multipliers are deliberately not applied so the
// price stays uniform per service regardless of who performs it.
type AvailableStaff struct {
	StaffID           string  `json:"staff_id"`
	Name              string  `json:"name"`
	EffectiveDuration int     `json:"effective_duration"` // minutes
	Price             float64 `json:"price"`

	// HasDurationOverride records whether EffectiveDuration came from a
	// staff-specific override; an override always wins over a
	// caller-requested duration.
	HasDurationOverride bool `json:"-"`
}

// AvailabilityResult answers "is this staff member free at this time".
type AvailabilityResult struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Conflict  *Booking `json:"conflict,omitempty"`
}

// ReminderPayload is the durable task payload for appointment reminders.
type ReminderPayload struct {
	BookingID   string `json:"bookingId"`
	TenantID    string `json:"tenantId"`
	ClientPhone string `json:"clientPhone"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	FireDate    string `json:"fireDate"`
}
