package bookingRepo

import (
	"context"

	"bookhive/models"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByDate(ctx context.Context, tenantID, date string) ([]models.Booking, error)
	ListByStaffAndDate(ctx context.Context, staffID, date string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id, status string) error
}
