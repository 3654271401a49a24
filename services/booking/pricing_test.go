package booking

import (
	"testing"
	"time"

	"wanderluxe/models"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestGuestMultiplier(t *testing.T) {
	cases := []struct {
		guests int
		want   float64
	}{
		{1, 1.0},
		{2, 1.1},
		{3, 1.2},
		{4, 1.3},
		{5, 1.4},
		{6, 1.5},
		{7, 1.5},  // capped at +50%
		{20, 1.5}, // still capped
		{0, 1.0},  // defaults to one guest
		{-3, 1.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, GuestMultiplier(tc.guests), 1e-9, "guests=%d", tc.guests)
	}
}

func TestCalculatePriceScenario(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMin: 1000}

	// 3 nights, 3 guests: 1000 * 3 * 1.2 = 3600.00
	price := CalculatePrice(dest, date("2024-06-01"), datePtr("2024-06-04"), 3)
	assert.Equal(t, 3600.00, price)
}

func TestCalculatePriceDefaults(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMin: 500}

	t.Run("no checkout date means one day", func(t *testing.T) {
		assert.Equal(t, 500.00, CalculatePrice(dest, date("2024-06-01"), nil, 1))
	})

	t.Run("zero guests defaults to one", func(t *testing.T) {
		assert.Equal(t, 500.00, CalculatePrice(dest, date("2024-06-01"), nil, 0))
	})

	t.Run("checkout before checkin clamps to one day", func(t *testing.T) {
		assert.Equal(t, 500.00, CalculatePrice(dest, date("2024-06-04"), datePtr("2024-06-01"), 1))
	})

	t.Run("destination without prices costs zero", func(t *testing.T) {
		assert.Equal(t, 0.00, CalculatePrice(&models.Destination{ID: "d2"}, date("2024-06-01"), nil, 4))
	})
}

func TestCalculatePriceRounding(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMin: 99.99}
	// 99.99 * 1 * 1.1 = 109.989 -> 109.99
	assert.Equal(t, 109.99, CalculatePrice(dest, date("2024-06-01"), nil, 2))
}

func TestCalculatePriceDeterministic(t *testing.T) {
	dest := &models.Destination{ID: "d1", PriceMin: 1234.56}
	checkIn := date("2024-06-01")
	checkOut := datePtr("2024-06-11")

	first := CalculatePrice(dest, checkIn, checkOut, 5)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, CalculatePrice(dest, checkIn, checkOut, 5))
	}
}
