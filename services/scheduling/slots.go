package scheduling

import (
	"bookhive/models"
	"bookhive/utils"
)

// SlotGranularity is the fixed step, in minutes, between candidate slot
// start times. Granularity and service duration are independent: a
// 45-minute service can start on any 15-minute boundary that fits.
const SlotGranularity = 15

// intersectsBreak uses closed-interval overlap: a candidate that merely
// touches the break boundary is rejected. This is intentionally stricter
// than the half-open rule used for bookings.
func intersectsBreak(candStart, candEnd, breakStart, breakEnd int) bool {
	return candStart <= breakEnd && candEnd >= breakStart
}

// GenerateSlots produces the ordered list of valid "HH:MM" start times for
// a service of the given duration within one day schedule, skipping the
// break window and any interval occupied by an existing booking. A
// non-working or malformed day yields an empty list, never an error.
func GenerateSlots(day models.DaySchedule, duration int, bookings []models.Booking) []string {
	if !day.Working || duration <= 0 {
		return nil
	}

	windowStart, err := utils.ParseClock(day.Start)
	if err != nil {
		return nil
	}
	windowEnd, err := utils.ParseClock(day.End)
	if err != nil {
		return nil
	}

	var breakStart, breakEnd int
	hasBreak := day.HasBreak()
	if hasBreak {
		breakStart, err = utils.ParseClock(day.BreakStart)
		if err != nil {
			return nil
		}
		breakEnd, err = utils.ParseClock(day.BreakEnd)
		if err != nil {
			return nil
		}
	}

	var slots []string
	for start := windowStart; start+duration <= windowEnd; start += SlotGranularity {
		end := start + duration

		if hasBreak && intersectsBreak(start, end, breakStart, breakEnd) {
			continue
		}
		if FindConflict(start, end, bookings) != nil {
			continue
		}
		slots = append(slots, utils.FormatClock(start))
	}
	return slots
}
