package scheduling

import (
	"fmt"

	"bookhive/models"
	"bookhive/utils"
)

// NotFoundError indicates a referenced staff member, service or booking
// does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InactiveResourceError indicates the staff member exists but is inactive.
type InactiveResourceError struct {
	StaffID string
}

func (e InactiveResourceError) Error() string {
	return fmt.Sprintf("staff %s is inactive", e.StaffID)
}

// CapabilityMismatchError indicates the staff member cannot perform the
// requested service.
type CapabilityMismatchError struct {
	StaffID   string
	ServiceID string
}

func (e CapabilityMismatchError) Error() string {
	return fmt.Sprintf("staff %s cannot perform service %s", e.StaffID, e.ServiceID)
}

// ScheduleUnavailableError indicates the requested window falls on a
// non-working day, outside working hours, or inside a break.
type ScheduleUnavailableError struct {
	StaffID string
	Date    string
	Reason  string
}

func (e ScheduleUnavailableError) Error() string {
	return fmt.Sprintf("staff %s unavailable on %s: %s", e.StaffID, e.Date, e.Reason)
}

// SchedulingConflictError indicates the requested window overlaps an
// existing non-cancelled booking. Conflict carries the blocking booking so
// callers can build a user-facing message.
type SchedulingConflictError struct {
	Conflict models.Booking
}

func (e SchedulingConflictError) Error() string {
	return fmt.Sprintf("requested window conflicts with booking %s (%s-%s)",
		e.Conflict.ID, utils.FormatClock(e.Conflict.Start), utils.FormatClock(e.Conflict.End))
}

// InvalidTransitionError indicates a booking status transition that the
// state machine forbids.
type InvalidTransitionError struct {
	BookingID string
	From      string
	To        string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("booking %s: cannot transition from %s to %s", e.BookingID, e.From, e.To)
}

// UpstreamError wraps a persistence-store failure. It is the only class
// eligible for caller-side retry, and only on idempotent reads: writes are
// never blindly retried since a retried write could double-create a booking.
type UpstreamError struct {
	Op  string
	Err error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream store failure: %v", e.Op, e.Err)
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}
