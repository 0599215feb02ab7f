package scheduling

import (
	"context"
	"errors"
	"fmt"

	"bookhive/database/repository"
	"bookhive/models"
	"bookhive/utils"

	"go.uber.org/zap"
)

// Availability reasons surfaced on AvailabilityResult.
const (
	ReasonStaffInactive = "staff_inactive"
	ReasonNotWorking    = "not_working_day"
	ReasonOutsideHours  = "outside_working_hours"
	ReasonBreak         = "inside_break_window"
	ReasonConflict      = "booking_conflict"
)

// GenerateTimeSlots returns the bookable "HH:MM" start times for one staff
// member, date and service duration. Results are cached per
// tenant/staff/date/duration; the cache-hit path returns exactly what the
// miss path computed.
func (e *DefaultSchedulingEngine) GenerateTimeSlots(ctx context.Context, staffID, date string, duration int) ([]string, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", duration)
	}

	staff, err := e.getStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if e.Cache != nil {
		if slots, ok := e.Cache.GetSlots(staff.TenantID, staffID, date, duration); ok {
			return slots, nil
		}
	}

	day, working := ResolveDaySchedule(staff.Schedule, date)
	if !working {
		// A day off is a normal outcome: empty slot list, no error.
		return nil, nil
	}

	bookings, err := e.BookingRepo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, UpstreamError{Op: "GenerateTimeSlots", Err: err}
	}

	slots := GenerateSlots(day, duration, bookings)
	if e.Cache != nil {
		e.Cache.PutSlots(staff.TenantID, staffID, date, duration, slots)
	}
	return slots, nil
}

// IsStaffAvailableAt checks one staff member's availability for the window
// [startTime, startTime+duration). Domain unavailability comes back on the
// result with a machine-readable reason; only store failures are errors.
func (e *DefaultSchedulingEngine) IsStaffAvailableAt(ctx context.Context, staffID, date, startTime string, duration int) (models.AvailabilityResult, error) {
	if duration <= 0 {
		return models.AvailabilityResult{}, fmt.Errorf("duration must be positive, got %d", duration)
	}
	start, err := utils.ParseClock(startTime)
	if err != nil {
		return models.AvailabilityResult{}, err
	}

	staff, err := e.getStaff(ctx, staffID)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	if !staff.Active {
		return models.AvailabilityResult{Reason: ReasonStaffInactive}, nil
	}

	if result, ok := checkWindow(staff.Schedule, date, start, duration); !ok {
		return result, nil
	}

	bookings, err := e.BookingRepo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return models.AvailabilityResult{}, UpstreamError{Op: "IsStaffAvailableAt", Err: err}
	}
	if conflict := FindConflict(start, start+duration, bookings); conflict != nil {
		return models.AvailabilityResult{Reason: ReasonConflict, Conflict: conflict}, nil
	}

	return models.AvailabilityResult{Available: true}, nil
}

// checkWindow validates the requested window against the day schedule.
// ok=false means the result carries the rejection reason.
func checkWindow(schedule models.WorkSchedule, date string, start, duration int) (models.AvailabilityResult, bool) {
	day, working := ResolveDaySchedule(schedule, date)
	if !working {
		return models.AvailabilityResult{Reason: ReasonNotWorking}, false
	}

	windowStart, err := utils.ParseClock(day.Start)
	if err != nil {
		return models.AvailabilityResult{Reason: ReasonNotWorking}, false
	}
	windowEnd, err := utils.ParseClock(day.End)
	if err != nil {
		return models.AvailabilityResult{Reason: ReasonNotWorking}, false
	}

	end := start + duration
	if start < windowStart || end > windowEnd {
		return models.AvailabilityResult{Reason: ReasonOutsideHours}, false
	}

	if day.HasBreak() {
		breakStart, err1 := utils.ParseClock(day.BreakStart)
		breakEnd, err2 := utils.ParseClock(day.BreakEnd)
		if err1 == nil && err2 == nil && intersectsBreak(start, end, breakStart, breakEnd) {
			return models.AvailabilityResult{Reason: ReasonBreak}, false
		}
	}

	return models.AvailabilityResult{Available: true}, true
}

// ListAvailableStaffForService returns the staff members able to perform a
// service who are individually free at the requested window. A caller
// duration of 0 means "use each candidate's effective duration"; an
// explicit staff override still wins over a caller-supplied duration.
func (e *DefaultSchedulingEngine) ListAvailableStaffForService(ctx context.Context, tenantID, serviceID, date, startTime string, duration int) ([]models.AvailableStaff, error) {
	logger := utils.GetLogger()

	service, err := e.getService(ctx, tenantID, serviceID)
	if err != nil {
		return nil, err
	}

	roster, err := e.matchedRoster(ctx, tenantID, serviceID, service)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return []models.AvailableStaff{}, nil
	}

	var available []models.AvailableStaff
	var failed int
	var lastErr error
	for _, candidate := range roster {
		checkDuration := candidate.EffectiveDuration
		if duration > 0 && !candidate.HasDurationOverride {
			checkDuration = duration
		}

		result, err := e.IsStaffAvailableAt(ctx, candidate.StaffID, date, startTime, checkDuration)
		if err != nil {
			// A failing candidate degrades gracefully: skip it and keep going.
			logger.Warn("skipping candidate after store failure",
				zap.String("staffID", candidate.StaffID), zap.Error(err))
			failed++
			lastErr = err
			continue
		}
		if !result.Available {
			continue
		}

		candidate.EffectiveDuration = checkDuration
		candidate.Price = service.BasePrice
		available = append(available, candidate)
	}

	if failed == len(roster) {
		return nil, UpstreamError{Op: "ListAvailableStaffForService", Err: lastErr}
	}
	if available == nil {
		available = []models.AvailableStaff{}
	}
	return available, nil
}

// matchedRoster returns the skill-matched roster for a service, cached per
// tenant/service since staff data changes less often than bookings.
func (e *DefaultSchedulingEngine) matchedRoster(ctx context.Context, tenantID, serviceID string, service *models.Service) ([]models.AvailableStaff, error) {
	if e.Cache != nil {
		if roster, ok := e.Cache.GetRoster(tenantID, serviceID); ok {
			return roster, nil
		}
	}

	staff, err := e.StaffRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, UpstreamError{Op: "matchedRoster", Err: err}
	}

	matched := MatchStaffForService(staff, serviceID)
	roster := make([]models.AvailableStaff, 0, len(matched))
	for _, m := range matched {
		roster = append(roster, models.AvailableStaff{
			StaffID:             m.Staff.ID,
			Name:                m.Staff.Name,
			EffectiveDuration:   EffectiveDuration(m.Skill, service),
			Price:               service.BasePrice,
			HasDurationOverride: m.Skill.DurationOverride != nil && *m.Skill.DurationOverride > 0,
		})
	}

	if e.Cache != nil {
		e.Cache.PutRoster(tenantID, serviceID, roster)
	}
	return roster, nil
}

func (e *DefaultSchedulingEngine) getStaff(ctx context.Context, staffID string) (*models.StaffMember, error) {
	staff, err := e.StaffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError{Resource: "staff", ID: staffID}
		}
		return nil, UpstreamError{Op: "getStaff", Err: err}
	}
	return staff, nil
}

func (e *DefaultSchedulingEngine) getService(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
	service, err := e.Catalog.GetByID(ctx, tenantID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError{Resource: "service", ID: serviceID}
		}
		return nil, UpstreamError{Op: "getService", Err: err}
	}
	return service, nil
}
