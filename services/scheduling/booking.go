package scheduling

import (
	"context"
	"errors"
	"time"

	"bookhive/database/repository"
	"bookhive/models"
	"bookhive/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request end to end and persists a pending
// booking. On any validation failure or conflict nothing is written and the
// specific typed reason is returned.
//
// The availability check and the insert are two separate store round-trips
// with no lock between them, so two concurrent requests for the same window
// can both pass the check before either writes. Closing that window needs a
// uniqueness or optimistic-concurrency guarantee at the store, not here.
func (e *DefaultSchedulingEngine) CreateBooking(ctx context.Context, tenantID string, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if _, err := utils.ParseDate(req.Date); err != nil {
		return nil, err
	}
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, err
	}

	service, err := e.getService(ctx, tenantID, req.ServiceID)
	if err != nil {
		return nil, err
	}

	var (
		duration  = service.BaseDuration
		staffName string
		bookings  []models.Booking
	)

	if req.StaffID != "" {
		staff, err := e.getStaff(ctx, req.StaffID)
		if err != nil {
			return nil, err
		}
		// Cross-tenant staff must look nonexistent, never leak.
		if staff.TenantID != tenantID {
			return nil, NotFoundError{Resource: "staff", ID: req.StaffID}
		}
		if !staff.Active {
			return nil, InactiveResourceError{StaffID: staff.ID}
		}

		skill, ok := staff.SkillFor(req.ServiceID)
		if !ok || !skill.Capable() {
			return nil, CapabilityMismatchError{StaffID: staff.ID, ServiceID: req.ServiceID}
		}
		duration = EffectiveDuration(skill, service)
		staffName = staff.Name

		if result, ok := checkWindow(staff.Schedule, req.Date, start, duration); !ok {
			return nil, ScheduleUnavailableError{StaffID: staff.ID, Date: req.Date, Reason: result.Reason}
		}

		bookings, err = e.BookingRepo.ListByStaffAndDate(ctx, req.StaffID, req.Date)
		if err != nil {
			return nil, UpstreamError{Op: "CreateBooking", Err: err}
		}
	} else {
		// No staff preference: the window must be free of every booking the
		// tenant holds on that date.
		bookings, err = e.BookingRepo.ListByDate(ctx, tenantID, req.Date)
		if err != nil {
			return nil, UpstreamError{Op: "CreateBooking", Err: err}
		}
	}

	if conflict := FindConflict(start, start+duration, bookings); conflict != nil {
		return nil, SchedulingConflictError{Conflict: *conflict}
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		StaffName:   staffName,
		Date:        req.Date,
		Start:       start,
		End:         start + duration, // frozen at creation, never recomputed
		Duration:    duration,
		Status:      models.BookingPending,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		CreatedAt:   time.Now(),
	}

	if err := e.BookingRepo.Create(ctx, booking); err != nil {
		return nil, UpstreamError{Op: "CreateBooking", Err: err}
	}

	e.invalidateForBooking(booking)

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleBookingReminder(ctx, *booking); err != nil {
			// The booking stands even when the reminder cannot be queued.
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}

// ConfirmBooking transitions a pending booking to confirmed.
func (e *DefaultSchedulingEngine) ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return e.transition(ctx, bookingID, models.BookingConfirmed)
}

// CancelBooking transitions a pending or confirmed booking to cancelled,
// freeing its interval for future slot generation.
func (e *DefaultSchedulingEngine) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return e.transition(ctx, bookingID, models.BookingCancelled)
}

// CompleteBooking transitions a confirmed booking to completed.
func (e *DefaultSchedulingEngine) CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return e.transition(ctx, bookingID, models.BookingCompleted)
}

// allowedTransition encodes the booking state machine. Cancelled and
// completed are terminal.
func allowedTransition(from, to string) bool {
	switch to {
	case models.BookingConfirmed:
		return from == models.BookingPending
	case models.BookingCancelled:
		return from == models.BookingPending || from == models.BookingConfirmed
	case models.BookingCompleted:
		return from == models.BookingConfirmed
	default:
		return false
	}
}

func (e *DefaultSchedulingEngine) transition(ctx context.Context, bookingID, to string) (*models.Booking, error) {
	booking, err := e.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, UpstreamError{Op: "transition", Err: err}
	}

	if !allowedTransition(booking.Status, to) {
		return nil, InvalidTransitionError{BookingID: bookingID, From: booking.Status, To: to}
	}

	if err := e.BookingRepo.UpdateStatus(ctx, bookingID, to); err != nil {
		return nil, UpstreamError{Op: "transition", Err: err}
	}
	booking.Status = to

	if to == models.BookingCancelled {
		e.invalidateForBooking(booking)
	}
	return booking, nil
}

func (e *DefaultSchedulingEngine) invalidateForBooking(booking *models.Booking) {
	if e.Cache == nil {
		return
	}
	if booking.StaffID != "" {
		e.Cache.InvalidateStaff(booking.TenantID, booking.StaffID)
	} else {
		e.Cache.InvalidateTenant(booking.TenantID)
	}
}
