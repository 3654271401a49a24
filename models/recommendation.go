package models

// RecommendationInput gathers a user's preference signals for ranking
// destinations they have not booked yet.
type RecommendationInput struct {
	UserID             string             `json:"userId"`
	PersonalityWeights map[string]float64 `json:"personalityWeights"` // axis -> 0..100
	CategoryWeights    map[string]float64 `json:"categoryWeights"`    // category -> 0..100
	Wishlisted         map[string]bool    `json:"wishlisted"`         // destination ids
	Viewed             map[string]bool    `json:"viewed"`             // destination ids
	Booked             map[string]bool    `json:"booked"`             // exclusion list
}

// RecommendedDestination is one ranked catalog entry with the signals that
// produced its score, for explainability.
type RecommendedDestination struct {
	Destination Destination `json:"destination"`
	Score       float64     `json:"score"`
	Reasons     []string    `json:"reasons"`
}
