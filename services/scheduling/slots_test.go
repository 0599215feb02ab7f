package scheduling

import (
	"testing"

	"bookhive/models"
	"bookhive/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workdayWithBreak() models.DaySchedule {
	return models.DaySchedule{
		Working:    true,
		Start:      "09:00",
		End:        "17:00",
		BreakStart: "12:00",
		BreakEnd:   "13:00",
	}
}

func TestGenerateSlots_StandardDayWithBreak(t *testing.T) {
	slots := GenerateSlots(workdayWithBreak(), 30, nil)
	require.NotEmpty(t, slots)

	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	// Morning runs through 11:15; anything later would touch the break.
	assert.Contains(t, slots, "11:15")
	assert.NotContains(t, slots, "11:30")
	assert.NotContains(t, slots, "11:45")
	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:45")

	// 13:00 still touches the break end, so the afternoon resumes at 13:15.
	assert.NotContains(t, slots, "13:00")
	assert.Contains(t, slots, "13:15")

	// 10 morning starts (09:00..11:15) + 14 afternoon starts (13:15..16:30).
	assert.Len(t, slots, 24)
}

func TestGenerateSlots_NoBreak(t *testing.T) {
	day := models.DaySchedule{Working: true, Start: "09:00", End: "17:00"}
	slots := GenerateSlots(day, 30, nil)

	require.Len(t, slots, 31)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])
}

func TestGenerateSlots_NonWorkingDay(t *testing.T) {
	day := models.DaySchedule{Working: false, Start: "09:00", End: "17:00"}
	assert.Empty(t, GenerateSlots(day, 30, nil))
}

func TestGenerateSlots_MalformedTimesYieldEmpty(t *testing.T) {
	tests := []struct {
		name string
		day  models.DaySchedule
	}{
		{"bad window start", models.DaySchedule{Working: true, Start: "9am", End: "17:00"}},
		{"bad window end", models.DaySchedule{Working: true, Start: "09:00", End: "25:00"}},
		{"bad break", models.DaySchedule{Working: true, Start: "09:00", End: "17:00", BreakStart: "noon", BreakEnd: "13:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, GenerateSlots(tt.day, 30, nil))
		})
	}
}

func TestGenerateSlots_DurationIndependentOfGranularity(t *testing.T) {
	day := models.DaySchedule{Working: true, Start: "09:00", End: "17:00"}
	slots := GenerateSlots(day, 45, nil)

	require.NotEmpty(t, slots)
	// 45-minute appointments still start on 15-minute boundaries; the last
	// one that fits ends exactly at closing.
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:15", slots[len(slots)-1])
	assert.Contains(t, slots, "09:15")
}

func TestGenerateSlots_ExcludesBookedIntervals(t *testing.T) {
	day := models.DaySchedule{Working: true, Start: "09:00", End: "17:00"}
	bookings := []models.Booking{
		{ID: "b1", Start: 840, End: 870, Status: models.BookingConfirmed}, // 14:00-14:30
	}

	slots := GenerateSlots(day, 30, bookings)

	assert.NotContains(t, slots, "13:45")
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "14:15")
	// Touching the booking on either side is fine.
	assert.Contains(t, slots, "13:30")
	assert.Contains(t, slots, "14:30")
}

func TestGenerateSlots_CancelledBookingDoesNotBlock(t *testing.T) {
	day := models.DaySchedule{Working: true, Start: "09:00", End: "17:00"}
	bookings := []models.Booking{
		{ID: "b1", Start: 840, End: 870, Status: models.BookingCancelled},
	}

	slots := GenerateSlots(day, 30, bookings)
	assert.Contains(t, slots, "14:00")
	assert.Contains(t, slots, "14:15")
}

func TestGenerateSlots_ZeroDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(workdayWithBreak(), 0, nil))
}

// Every generated slot must lie inside the working window, clear of the
// break, clear of every live booking, and aligned to the granularity.
func TestGenerateSlots_SlotProperties(t *testing.T) {
	day := workdayWithBreak()
	bookings := []models.Booking{
		{ID: "b1", Start: 570, End: 615, Status: models.BookingPending},    // 09:30-10:15
		{ID: "b2", Start: 900, End: 930, Status: models.BookingConfirmed},  // 15:00-15:30
		{ID: "b3", Start: 960, End: 1020, Status: models.BookingCancelled}, // ignored
	}
	const duration = 45

	slots := GenerateSlots(day, duration, bookings)
	require.NotEmpty(t, slots)

	for _, s := range slots {
		start, err := utils.ParseClock(s)
		require.NoError(t, err)
		end := start + duration

		assert.GreaterOrEqual(t, start, 540, "slot %s starts before opening", s)
		assert.LessOrEqual(t, end, 1020, "slot %s runs past closing", s)
		assert.Zero(t, (start-540)%SlotGranularity, "slot %s off the grid", s)
		assert.False(t, intersectsBreak(start, end, 720, 780), "slot %s intersects the break", s)
		assert.Nil(t, FindConflict(start, end, bookings), "slot %s collides with a booking", s)
	}
}
