package booking

import (
	"math"
	"time"

	"wanderluxe/models"
)

const (
	guestSurchargeRate = 0.1
	maxGuestMultiplier = 1.5
)

// GuestMultiplier returns the price multiplier for a party size: a 10%
// surcharge per guest beyond the first, capped at +50%.
func GuestMultiplier(guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	return math.Min(maxGuestMultiplier, 1+float64(guests-1)*guestSurchargeRate)
}

// CalculatePrice computes a booking's total price from the destination's
// minimum price, the stay length and the guest count. Missing inputs default
// safely: no checkout date means a single day, zero guests means one. The
// result is rounded to 2 decimal places and is deterministic for identical
// inputs.
func CalculatePrice(dest *models.Destination, checkIn time.Time, checkOut *time.Time, guests int) float64 {
	basePrice := 0.0
	if dest != nil {
		basePrice = dest.PriceMin
	}
	days := stayDays(checkIn, checkOut)
	return round2(basePrice * float64(days) * GuestMultiplier(guests))
}

func stayDays(checkIn time.Time, checkOut *time.Time) int {
	if checkOut == nil {
		return 1
	}
	days := int(checkOut.Sub(checkIn).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
