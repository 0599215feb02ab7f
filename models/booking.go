package models

import "time"

// Booking status values.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking represents a persisted appointment record.
// Start and End are minutes from midnight; End is frozen at creation time
// from the duration in effect then and is never recomputed.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	TenantID    string    `bson:"tenant_id" json:"tenant_id"`
	ServiceID   string    `bson:"service_id" json:"service_id"`
	StaffID     string    `bson:"staff_id,omitempty" json:"staff_id,omitempty"`
	StaffName   string    `bson:"staff_name,omitempty" json:"staff_name,omitempty"` // denormalized for display without a join
	Date        string    `bson:"date" json:"date"`                                 // "YYYY-MM-DD"
	Start       int       `bson:"start" json:"start"`
	End         int       `bson:"end" json:"end"`
	Duration    int       `bson:"duration" json:"duration"` // minutes, frozen at creation
	Status      string    `bson:"status" json:"status"`
	ClientName  string    `bson:"client_name,omitempty" json:"client_name,omitempty"`
	ClientPhone string    `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Occupies reports whether the booking still blocks its interval for
// conflict checks. Cancelled bookings never conflict.
func (b Booking) Occupies() bool {
	return b.Status != BookingCancelled
}

// BookingRequest is the input for creating a booking.
type BookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	StaffID     string `json:"staff_id,omitempty"` // optional; empty means any-staff booking
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"` // "HH:MM"
	ClientName  string `json:"client_name,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
}
