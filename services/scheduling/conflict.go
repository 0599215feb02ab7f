package scheduling

import "bookhive/models"

// Overlaps reports whether two half-open [start, end) minute intervals
// share any instant. Touching endpoints do not conflict: a booking ending
// at 10:00 does not conflict with one starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// FindConflict returns the first non-cancelled booking whose interval
// overlaps [start, end), or nil when the window is free. The first hit is
// enough for a diagnostic message; conflicts are not enumerated.
func FindConflict(start, end int, bookings []models.Booking) *models.Booking {
	for i := range bookings {
		b := &bookings[i]
		if !b.Occupies() {
			continue
		}
		if Overlaps(start, end, b.Start, b.End) {
			return b
		}
	}
	return nil
}
