package models

import "time"

// Service is a bookable catalog entry owned by a tenant.
type Service struct {
	ID           string    `bson:"id" json:"id"`
	TenantID     string    `bson:"tenant_id" json:"tenant_id"`
	Name         string    `bson:"name" json:"name"`
	BasePrice    float64   `bson:"base_price" json:"base_price"`
	BaseDuration int       `bson:"base_duration" json:"base_duration"` // minutes
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
