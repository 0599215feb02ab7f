package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"12:30", 750, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
		{"12:30:00", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestFormatClockRoundTrips(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 540, 750, 1439} {
		got, err := ParseClock(FormatClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-03-10", "monday"},
		{"2025-03-14", "friday"},
		{"2025-03-09", "sunday"},
		{"2024-02-29", "thursday"},
	}
	for _, tt := range tests {
		got, err := WeekdayName(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, tt.date)
	}

	_, err := WeekdayName("03/10/2025")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, "UTC", d.Location().String())

	_, err = ParseDate("2025-13-01")
	assert.Error(t, err)
}
