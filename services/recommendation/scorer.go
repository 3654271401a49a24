package recommendation

import (
	"fmt"

	"wanderluxe/models"
)

// Scoring weights. Preference weights arrive on a 0..100 scale and are
// normalized to 0..1 before multiplying, so the weighted terms stay in the
// same magnitude range as the flat bonuses.
const (
	ratingWeight      = 10.0
	categoryWeight    = 20.0
	tagWeight         = 15.0
	personalityWeight = 15.0
	wishlistBonus     = 50.0
	viewedBonus       = 25.0
	featuredBonus     = 20.0

	highRatingThreshold = 4.5
)

// personalityBuckets maps a personality axis to the destination categories
// it favors.
var personalityBuckets = map[string][]string{
	"adventure":  {"adventure", "outdoor", "safari", "mountain"},
	"relaxation": {"beach", "island", "wellness", "resort"},
	"culture":    {"culture", "city", "heritage", "historical"},
}

// ScoreDestination computes a destination's recommendation score for the
// given input along with the human-readable reasons. The reasons reflect the
// same signals that contributed to the score.
func ScoreDestination(dest *models.Destination, input *models.RecommendationInput) (float64, []string) {
	score := dest.Rating * ratingWeight
	var reasons []string

	if dest.Rating >= highRatingThreshold {
		reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f)", dest.Rating))
	}

	if w := input.CategoryWeights[dest.Category]; w > 0 {
		score += (w / 100) * categoryWeight
		reasons = append(reasons, fmt.Sprintf("Matches your interest in %s", dest.Category))
	}

	for _, tag := range dest.Tags {
		if w := input.CategoryWeights[tag]; w > 0 {
			score += (w / 100) * tagWeight
		}
	}

	for axis, categories := range personalityBuckets {
		w := input.PersonalityWeights[axis]
		if w <= 0 {
			continue
		}
		if matchesBucket(dest, categories) {
			score += (w / 100) * personalityWeight
		}
	}

	if input.Wishlisted[dest.ID] {
		score += wishlistBonus
		reasons = append(reasons, "On your wishlist")
	}
	if input.Viewed[dest.ID] && !input.Booked[dest.ID] {
		score += viewedBonus
		reasons = append(reasons, "You viewed this destination")
	}
	if dest.IsFeatured {
		score += featuredBonus
		reasons = append(reasons, "Featured destination")
	}

	return score, reasons
}

func matchesBucket(dest *models.Destination, categories []string) bool {
	for _, c := range categories {
		if dest.Category == c {
			return true
		}
		for _, tag := range dest.Tags {
			if tag == c {
				return true
			}
		}
	}
	return false
}
