package staffRepo

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

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.DB().Collection("staff")
	return &MongoStaffRepo{coll: coll}
}

func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.StaffMember
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("staff %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"tenant_id": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var staff []models.StaffMember
	for cursor.Next(ctx) {
		var s models.StaffMember
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode staff record: %w", err)
		}
		staff = append(staff, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("staff cursor error: %w", err)
	}
	return staff, nil
}

func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.StaffMember) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff record: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Update(ctx context.Context, staff *models.StaffMember) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": staff.ID}
	res, err := r.coll.ReplaceOne(ctx, filter, staff)
	if err != nil {
		return fmt.Errorf("failed to update staff %s: %w", staff.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff %s: %w", staff.ID, repository.ErrNotFound)
	}
	return nil
}

func (r *MongoStaffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("staff %s: %w", id, repository.ErrNotFound)
	}
	return nil
}
