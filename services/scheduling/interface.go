package scheduling

import (
	"context"

	bookingRepo "bookhive/database/repository/bookingstore"
	catalogRepo "bookhive/database/repository/catalog"
	staffRepo "bookhive/database/repository/staff"
	"bookhive/models"
)

// Engine is the availability and booking engine: schedule resolution, slot
// generation, conflict detection, skill matching and booking orchestration.
type Engine interface {
	GenerateTimeSlots(ctx context.Context, staffID, date string, duration int) ([]string, error)
	IsStaffAvailableAt(ctx context.Context, staffID, date, startTime string, duration int) (models.AvailabilityResult, error)
	ListAvailableStaffForService(ctx context.Context, tenantID, serviceID, date, startTime string, duration int) ([]models.AvailableStaff, error)
	CreateBooking(ctx context.Context, tenantID string, req models.BookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

// ReminderScheduler enqueues a durable reminder for a created booking.
// Kept as a small seam so the engine does not depend on the queue transport.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking models.Booking) error
}

// DefaultSchedulingEngine is the production engine. All collaborators are
// injected; the cache is an owned instance, never package state.
type DefaultSchedulingEngine struct {
	StaffRepo   staffRepo.StaffRepository
	BookingRepo bookingRepo.BookingRepository
	Catalog     catalogRepo.ServiceCatalog
	Cache       *AvailabilityCache
	Reminders   ReminderScheduler // optional
}
