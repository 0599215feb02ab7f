package reminders

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bookhive/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		BookingID:   "b1",
		TenantID:    "t1",
		ClientPhone: "+15550100",
		Title:       "Upcoming appointment",
		Body:        "Reminder: your appointment on 2025-03-10 at 14:00.",
	}
	fireAt := time.Date(2025, 3, 9, 14, 0, 0, 0, time.UTC)

	task, opts, err := NewReminderTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeReminderSend, task.Type())
	assert.Len(t, opts, 1)

	var decoded models.ReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

// These paths must bail out before touching the queue client, so a nil
// client proves no enqueue happened.
func TestScheduleBookingReminder_SkipPaths(t *testing.T) {
	scheduler := &AsynqReminderScheduler{Client: nil, Lead: 24 * time.Hour}
	ctx := context.Background()

	t.Run("no client phone", func(t *testing.T) {
		err := scheduler.ScheduleBookingReminder(ctx, models.Booking{
			ID:   "b1",
			Date: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		})
		assert.NoError(t, err)
	})

	t.Run("booking inside the lead window", func(t *testing.T) {
		err := scheduler.ScheduleBookingReminder(ctx, models.Booking{
			ID:          "b2",
			ClientPhone: "+15550100",
			Date:        time.Now().Format("2006-01-02"),
			Start:       600,
		})
		assert.NoError(t, err)
	})

	t.Run("unparseable date", func(t *testing.T) {
		err := scheduler.ScheduleBookingReminder(ctx, models.Booking{
			ID:          "b3",
			ClientPhone: "+15550100",
			Date:        "tomorrow",
		})
		assert.Error(t, err)
	})
}
