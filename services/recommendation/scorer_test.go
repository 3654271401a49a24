package recommendation

import (
	"testing"

	"wanderluxe/models"

	"github.com/stretchr/testify/assert"
)

func emptyInput() *models.RecommendationInput {
	return &models.RecommendationInput{
		PersonalityWeights: map[string]float64{},
		CategoryWeights:    map[string]float64{},
		Wishlisted:         map[string]bool{},
		Viewed:             map[string]bool{},
		Booked:             map[string]bool{},
	}
}

func TestScoreRatingBaseline(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 4.0}

	score, reasons := ScoreDestination(dest, emptyInput())

	assert.Equal(t, 40.0, score)
	assert.Empty(t, reasons, "4.0 rating is below the highly-rated threshold")
}

func TestScoreHighRatingReason(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 4.7}

	score, reasons := ScoreDestination(dest, emptyInput())

	assert.Equal(t, 47.0, score)
	assert.Contains(t, reasons, "Highly rated (4.7)")
}

func TestScoreCategoryAndTagWeights(t *testing.T) {
	dest := &models.Destination{
		ID:       "d1",
		Rating:   4.0,
		Category: "beach",
		Tags:     []string{"island", "luxury"},
	}
	input := emptyInput()
	input.CategoryWeights = map[string]float64{
		"beach":  80,
		"island": 60,
	}

	score, reasons := ScoreDestination(dest, input)

	// 40 rating + 0.8*20 category + 0.6*15 matching tag
	assert.InDelta(t, 40.0+16.0+9.0, score, 1e-9)
	assert.Contains(t, reasons, "Matches your interest in beach")
}

func TestScorePersonalityBucket(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 4.0, Category: "mountain"}
	input := emptyInput()
	input.PersonalityWeights = map[string]float64{
		"adventure":  100,
		"relaxation": 100, // no matching category, must not contribute
	}

	score, _ := ScoreDestination(dest, input)

	assert.InDelta(t, 40.0+15.0, score, 1e-9)
}

func TestScoreWishlistAndViewedBonuses(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 3.0}
	input := emptyInput()
	input.Wishlisted["d1"] = true
	input.Viewed["d1"] = true

	score, reasons := ScoreDestination(dest, input)

	assert.Equal(t, 30.0+50.0+25.0, score)
	assert.Contains(t, reasons, "On your wishlist")
	assert.Contains(t, reasons, "You viewed this destination")
}

func TestScoreViewedBonusSkippedWhenBooked(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 3.0}
	input := emptyInput()
	input.Viewed["d1"] = true
	input.Booked["d1"] = true

	score, reasons := ScoreDestination(dest, input)

	assert.Equal(t, 30.0, score)
	assert.NotContains(t, reasons, "You viewed this destination")
}

func TestScoreFeaturedBonus(t *testing.T) {
	dest := &models.Destination{ID: "d1", Rating: 3.0, IsFeatured: true}

	score, reasons := ScoreDestination(dest, emptyInput())

	assert.Equal(t, 30.0+20.0, score)
	assert.Contains(t, reasons, "Featured destination")
}
