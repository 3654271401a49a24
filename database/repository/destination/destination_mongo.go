package destinationRepo

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

// DestinationRepository is a read-only view of the destination catalog.
type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
	ListFeatured(ctx context.Context) ([]models.Destination, error)
}

// MongoDestinationRepo implements DestinationRepository using MongoDB.
type MongoDestinationRepo struct {
	coll *mongo.Collection
}

func NewMongoDestinationRepo() DestinationRepository {
	repo := &MongoDestinationRepo{coll: database.Collection("destinations")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create destination indexes: %v\n", err)
	}
	return repo
}

func (r *MongoDestinationRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoDestinationRepo) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	var d models.Destination
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to fetch destination %s: %w", id, err)
	}
	return &d, nil
}

// List returns the catalog sorted by id, which keeps downstream ranking
// deterministic.
func (r *MongoDestinationRepo) List(ctx context.Context) ([]models.Destination, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer cur.Close(ctx)

	var destinations []models.Destination
	if err := cur.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return destinations, nil
}

func (r *MongoDestinationRepo) ListFeatured(ctx context.Context) ([]models.Destination, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"is_featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured destinations: %w", err)
	}
	defer cur.Close(ctx)

	var destinations []models.Destination
	if err := cur.All(ctx, &destinations); err != nil {
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return destinations, nil
}
