package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	bookingRepo "wanderluxe/database/repository/booking"
	destinationRepo "wanderluxe/database/repository/destination"
	userRepo "wanderluxe/database/repository/user"
	"wanderluxe/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheTTL = 10 * time.Minute

// RecommendationService ranks unbooked destinations for a user.
type RecommendationService interface {
	Recommend(ctx context.Context, userID string, limit int) ([]models.RecommendedDestination, error)
}

// DefaultRecommendationService assembles the user's preference signals,
// scores the catalog and caches the ranking in Redis for a short TTL.
type DefaultRecommendationService struct {
	Users        userRepo.UserRepository
	Destinations destinationRepo.DestinationRepository
	Bookings     bookingRepo.BookingRepository
	Cache        *redis.Client
	Logger       *zap.Logger
}

func (s *DefaultRecommendationService) Recommend(ctx context.Context, userID string, limit int) ([]models.RecommendedDestination, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("recommendations:%s", userID)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var results []models.RecommendedDestination
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return clamp(results, limit), nil
			}
		}
	}

	input, err := s.buildInput(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.Destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination catalog: %w", err)
	}

	var results []models.RecommendedDestination
	for i := range catalog {
		dest := catalog[i]
		if input.Booked[dest.ID] {
			continue
		}
		score, reasons := ScoreDestination(&dest, input)
		results = append(results, models.RecommendedDestination{
			Destination: dest,
			Score:       score,
			Reasons:     reasons,
		})
	}

	// Descending by score; equal scores fall back to destination id so the
	// ordering is fully deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Destination.ID < results[j].Destination.ID
	})

	if s.Cache != nil {
		if data, err := json.Marshal(results); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache recommendations",
					zap.String("userId", userID),
					zap.Error(err),
				)
			}
		}
	}
	return clamp(results, limit), nil
}

func (s *DefaultRecommendationService) buildInput(ctx context.Context, userID string) (*models.RecommendationInput, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	booked, err := s.Bookings.BookedDestinationIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking history: %w", err)
	}

	input := &models.RecommendationInput{
		UserID:             userID,
		PersonalityWeights: user.Preferences.PersonalityWeights,
		CategoryWeights:    user.Preferences.CategoryWeights,
		Wishlisted:         toSet(user.Preferences.Wishlist),
		Viewed:             toSet(user.Preferences.ViewedDestinations),
		Booked:             booked,
	}
	return input, nil
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func clamp(results []models.RecommendedDestination, limit int) []models.RecommendedDestination {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
