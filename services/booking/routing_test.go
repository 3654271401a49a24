package booking

import (
	"testing"

	"wanderluxe/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyComplexScenario(t *testing.T) {
	// 6 guests, 20-day stay, special requests, premium destination:
	// 20 + 25 + 15 + 20 = 80 -> AGENT.
	dest := &models.Destination{ID: "d1", PriceMax: 6000}
	req := &models.BookingRequest{
		DestinationID:   "d1",
		CheckInDate:     date("2024-06-01"),
		CheckOutDate:    datePtr("2024-06-21"),
		NumberOfGuests:  6,
		SpecialRequests: "wheelchair access",
	}

	decision := Classify(dest, req)
	assert.Equal(t, models.BookingAgent, decision.Type)
	assert.Equal(t, 80, decision.ComplexityScore)
	assert.Len(t, decision.Factors, 4)
}

func TestClassifySimpleScenario(t *testing.T) {
	// Solo traveller, single-day, no requests, cheap destination: score 5.
	dest := &models.Destination{ID: "d1", PriceMax: 500}
	req := &models.BookingRequest{
		DestinationID:  "d1",
		CheckInDate:    date("2024-06-01"),
		NumberOfGuests: 1,
	}

	decision := Classify(dest, req)
	assert.Equal(t, models.BookingDirect, decision.Type)
	assert.Equal(t, 5, decision.ComplexityScore)
	assert.Equal(t, []string{"Single-day booking"}, decision.Factors)
}

func TestClassifyThreshold(t *testing.T) {
	// 5 guests + 10-day stay: 20 + 15 = 35 -> DIRECT. Adding special
	// requests pushes it to 50 -> AGENT.
	dest := &models.Destination{ID: "d1", PriceMax: 1000}
	req := &models.BookingRequest{
		DestinationID:  "d1",
		CheckInDate:    date("2024-06-01"),
		CheckOutDate:   datePtr("2024-06-11"),
		NumberOfGuests: 5,
	}

	decision := Classify(dest, req)
	assert.Equal(t, models.BookingDirect, decision.Type)
	assert.Equal(t, 35, decision.ComplexityScore)

	req.SpecialRequests = "late checkout"
	decision = Classify(dest, req)
	assert.Equal(t, models.BookingAgent, decision.Type)
	assert.Equal(t, 50, decision.ComplexityScore)
}

func TestClassifyGuestMonotonicity(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMax: 1000}
	prev := -1
	for guests := 1; guests <= 10; guests++ {
		req := &models.BookingRequest{
			DestinationID:  "d1",
			CheckInDate:    date("2024-06-01"),
			CheckOutDate:   datePtr("2024-06-03"),
			NumberOfGuests: guests,
		}
		score := Classify(dest, req).ComplexityScore
		assert.GreaterOrEqual(t, score, prev, "guests=%d", guests)
		prev = score
	}
}

func TestClassifyPriceFallback(t *testing.T) {
	req := &models.BookingRequest{
		DestinationID:  "d1",
		CheckInDate:    date("2024-06-01"),
		NumberOfGuests: 1,
	}

	t.Run("uses priceMax first", func(t *testing.T) {
		dest := &models.Destination{ID: "d1", PriceMin: 100, PriceMax: 6000}
		decision := Classify(dest, req)
		assert.Contains(t, decision.Factors, "Premium destination")
	})

	t.Run("falls back to priceMin", func(t *testing.T) {
		dest := &models.Destination{ID: "d1", PriceMin: 3000}
		decision := Classify(dest, req)
		assert.Contains(t, decision.Factors, "Mid-price destination")
	})

	t.Run("no price data scores zero for price", func(t *testing.T) {
		dest := &models.Destination{ID: "d1"}
		decision := Classify(dest, req)
		assert.Equal(t, 5, decision.ComplexityScore) // single-day only
	})
}

func TestClassifyFactorOrder(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMax: 6000}
	req := &models.BookingRequest{
		DestinationID:   "d1",
		CheckInDate:     date("2024-06-01"),
		NumberOfGuests:  3,
		SpecialRequests: "anniversary dinner",
	}

	decision := Classify(dest, req)
	assert.Equal(t, []string{
		"Medium group (3 guests)",
		"Single-day booking",
		"Special requests",
		"Premium destination",
	}, decision.Factors)
}
