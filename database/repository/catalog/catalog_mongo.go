package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookhive/database"
	"bookhive/database/repository"
	"bookhive/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoServiceCatalog implements ServiceCatalog using MongoDB.
type MongoServiceCatalog struct {
	coll *mongo.Collection
}

// NewMongoServiceCatalog creates a new catalog repository.
func NewMongoServiceCatalog() ServiceCatalog {
	return &MongoServiceCatalog{coll: database.DB().Collection("services")}
}

func (r *MongoServiceCatalog) GetByID(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	filter := bson.M{"id": serviceID, "tenant_id": tenantID}
	if err := r.coll.FindOne(ctx, filter).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("service %s: %w", serviceID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (r *MongoServiceCatalog) ListByTenant(ctx context.Context, tenantID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list services for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("service cursor error: %w", err)
	}
	return services, nil
}

func (r *MongoServiceCatalog) Create(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
