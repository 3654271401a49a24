package booking

import (
	"fmt"

	"wanderluxe/models"
)

// Complexity scoring weights. A request at or above AgentThreshold is routed
// to a human travel agent; anything below it is handled self-service.
const (
	AgentThreshold = 40

	scoreLargeGroup      = 20
	scoreMediumGroup     = 10
	scoreExtendedTrip    = 25
	scoreLongTrip        = 15
	scoreSingleDay       = 5
	scoreSpecialRequests = 15
	scorePremiumPrice    = 20
	scoreMidPrice        = 10
)

// Classify scores a booking request's complexity and decides whether it can
// be self-service (DIRECT) or needs an agent (AGENT). The factor list records
// the triggered factors in evaluation order. A destination with no price data
// contributes nothing to the score rather than failing.
func Classify(dest *models.Destination, req *models.BookingRequest) models.RoutingDecision {
	score := 0
	var factors []string

	guests := req.NumberOfGuests
	if guests > 4 {
		score += scoreLargeGroup
		factors = append(factors, fmt.Sprintf("Large group (%d guests)", guests))
	} else if guests > 2 {
		score += scoreMediumGroup
		factors = append(factors, fmt.Sprintf("Medium group (%d guests)", guests))
	}

	nights := req.StayNights()
	if req.CheckOutDate != nil && nights > 14 {
		score += scoreExtendedTrip
		factors = append(factors, fmt.Sprintf("Extended trip (%d days)", nights))
	} else if req.CheckOutDate != nil && nights > 7 {
		score += scoreLongTrip
		factors = append(factors, fmt.Sprintf("Long trip (%d days)", nights))
	}

	if req.CheckOutDate == nil {
		score += scoreSingleDay
		factors = append(factors, "Single-day booking")
	}

	if req.SpecialRequests != "" {
		score += scoreSpecialRequests
		factors = append(factors, "Special requests")
	}

	price := dest.ReferencePrice()
	if price > 5000 {
		score += scorePremiumPrice
		factors = append(factors, "Premium destination")
	} else if price > 2000 {
		score += scoreMidPrice
		factors = append(factors, "Mid-price destination")
	}

	decision := models.RoutingDecision{
		ComplexityScore: score,
		Factors:         factors,
	}
	if score >= AgentThreshold {
		decision.Type = models.BookingAgent
		decision.Reason = fmt.Sprintf("Complexity score %d requires agent assistance", score)
	} else {
		decision.Type = models.BookingDirect
		decision.Reason = fmt.Sprintf("Complexity score %d allows direct booking", score)
	}
	return decision
}
