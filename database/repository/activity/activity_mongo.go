package activityRepo

import (
	"context"
	"fmt"
	"time"

	"wanderluxe/database"
	"wanderluxe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository appends audit-trail records.
type ActivityRepository interface {
	Create(ctx context.Context, rec *models.ActivityRecord) error
	ListByEntity(ctx context.Context, entityRef string) ([]models.ActivityRecord, error)
}

// MongoActivityRepo implements ActivityRepository using MongoDB.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

func NewMongoActivityRepo() ActivityRepository {
	repo := &MongoActivityRepo{coll: database.Collection("activity_records")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create activity indexes: %v\n", err)
	}
	return repo
}

func (r *MongoActivityRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "entity_ref", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoActivityRepo) Create(ctx context.Context, rec *models.ActivityRecord) error {
	if _, err := r.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert activity record: %w", err)
	}
	return nil
}

func (r *MongoActivityRepo) ListByEntity(ctx context.Context, entityRef string) ([]models.ActivityRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"entity_ref": entityRef}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity for %s: %w", entityRef, err)
	}
	defer cur.Close(ctx)

	var records []models.ActivityRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode activity records: %w", err)
	}
	return records, nil
}
