package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookhive/models"
	"bookhive/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds the durable task for one reminder delivery.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the Redis-backed
// task queue. Queued tasks survive process restarts, unlike the in-process
// timers they replace.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration // how long before the appointment the reminder fires
}

// ScheduleBookingReminder queues a reminder for a booking's client. A
// booking too close to its start time gets no reminder rather than an
// immediate one.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking models.Booking) error {
	if booking.ClientPhone == "" {
		return nil
	}

	date, err := utils.ParseDate(booking.Date)
	if err != nil {
		return err
	}
	startAt := date.Add(time.Duration(booking.Start) * time.Minute)
	fireAt := startAt.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("skipping reminder for near-term booking",
			zap.String("bookingID", booking.ID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   booking.ID,
		TenantID:    booking.TenantID,
		ClientPhone: booking.ClientPhone,
		Title:       "Upcoming appointment",
		Body: fmt.Sprintf("Reminder: your appointment on %s at %s.",
			booking.Date, utils.FormatClock(booking.Start)),
		FireDate: fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}
