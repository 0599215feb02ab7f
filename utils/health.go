package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports reachability of the engine's external dependencies:
// the booking store and the reminder queue.
type HealthStatus struct {
	BookingStore  bool      `json:"booking_store"`
	ReminderQueue bool      `json:"reminder_queue"`
	CheckedAt     time.Time `json:"checked_at"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes the booking store and the reminder queue on a
// fixed interval and keeps an in-memory snapshot for the health endpoint.
// The first probe runs immediately so the endpoint is meaningful at startup.
func StartHealthMonitor(queueClient *redis.Client, mongoClient *mongo.Client) {
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		status := HealthStatus{
			BookingStore:  mongoClient.Ping(ctx, nil) == nil,
			ReminderQueue: queueClient.Ping(ctx).Err() == nil,
			CheckedAt:     time.Now(),
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
