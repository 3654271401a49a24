package commissionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wanderluxe/database"
	"wanderluxe/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommissionRepository persists agent commissions. The (agent_id, booking_id)
// pair is unique: a booking earns its agent at most one commission.
type CommissionRepository interface {
	// FindByAgentAndBooking returns the existing commission, or (nil, nil)
	// when none exists yet.
	FindByAgentAndBooking(ctx context.Context, agentID, bookingID string) (*models.Commission, error)
	Create(ctx context.Context, c *models.Commission) error
	ListByAgent(ctx context.Context, agentID string) ([]models.Commission, error)
}

// MongoCommissionRepo implements CommissionRepository using MongoDB.
type MongoCommissionRepo struct {
	coll *mongo.Collection
}

func NewMongoCommissionRepo() CommissionRepository {
	repo := &MongoCommissionRepo{coll: database.Collection("commissions")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create commission indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCommissionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "agent_id", Value: 1}, {Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCommissionRepo) FindByAgentAndBooking(ctx context.Context, agentID, bookingID string) (*models.Commission, error) {
	var c models.Commission
	err := r.coll.FindOne(ctx, bson.M{"agent_id": agentID, "booking_id": bookingID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commission for agent %s booking %s: %w", agentID, bookingID, err)
	}
	return &c, nil
}

func (r *MongoCommissionRepo) Create(ctx context.Context, c *models.Commission) error {
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert commission %s: %w", c.ID, err)
	}
	return nil
}

func (r *MongoCommissionRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Commission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"agent_id": agentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions for agent %s: %w", agentID, err)
	}
	defer cur.Close(ctx)

	var commissions []models.Commission
	if err := cur.All(ctx, &commissions); err != nil {
		return nil, fmt.Errorf("failed to decode commissions: %w", err)
	}
	return commissions, nil
}
