package userRepo

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

// UserRepository stores platform accounts and answers the agent-directory
// query used by assignment balancing.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	ListActiveAgents(ctx context.Context) ([]models.User, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) Create(ctx context.Context, u *models.User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	return nil
}

func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &u, nil
}

func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to fetch user by email %s: %w", email, err)
	}
	return &u, nil
}

func (r *MongoUserRepo) Update(ctx context.Context, u *models.User) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", u.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", u.ID)
	}
	return nil
}

// ListActiveAgents returns ACTIVE users with the AGENT role in a stable
// order, which keeps assignment tie-breaking deterministic.
func (r *MongoUserRepo) ListActiveAgents(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"role": models.RoleAgent, "status": models.UserActive}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active agents: %w", err)
	}
	defer cur.Close(ctx)

	var agents []models.User
	if err := cur.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}
