package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the bookings
// collection.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create booking indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "status", Value: 1}, {Key: "type", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert booking %s: %w", b.ID, err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) GetByReference(ctx context.Context, ref string) (*models.Booking, error) {
	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"reference": ref}).Decode(&b); err != nil {
		return nil, fmt.Errorf("failed to fetch booking by reference %s: %w", ref, err)
	}
	return &b, nil
}

// Update replaces the stored booking document in one write so a transition
// is never partially visible.
func (r *MongoBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", b.ID)
	}
	return nil
}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) CountPendingByAgent(ctx context.Context, agentID string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"agent_id": agentID,
		"status":   models.StatusPending,
		"type":     models.BookingAgent,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending bookings for agent %s: %w", agentID, err)
	}
	return count, nil
}

func (r *MongoBookingRepo) BookedDestinationIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids, err := r.coll.Distinct(ctx, "destination_id", bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked destinations for user %s: %w", userID, err)
	}
	booked := make(map[string]bool, len(ids))
	for _, id := range ids {
		if s, ok := id.(string); ok {
			booked[s] = true
		}
	}
	return booked, nil
}

func (r *MongoBookingRepo) ListConfirmedCheckedOutBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status": models.StatusConfirmed,
		"$or": bson.A{
			bson.M{"check_out_date": bson.M{"$lt": cutoff}},
			bson.M{"check_out_date": nil, "check_in_date": bson.M{"$lt": cutoff}},
		},
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list checked-out bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) ListConfirmedCheckingInBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	cur, err := r.coll.Find(ctx, bson.M{
		"status":        models.StatusConfirmed,
		"check_in_date": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}
