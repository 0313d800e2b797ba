package budget

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"wayfare/models"
)

// ErrInvalidBudget is returned when a split is requested for a non-positive
// budget or duration.
var ErrInvalidBudget = errors.New("invalid budget")

// Policy holds the split percentages. Defaults are 55% lodging, 30%
// activities, 15% food; override via BUDGET_STAY_PCT / BUDGET_ACTIVITY_PCT /
// BUDGET_FOOD_PCT when a deployment wants a different split.
type Policy struct {
	AccommodationShare float64
	ActivityShare      float64
	FoodShare          float64
	// HotelFlex is the price headroom the hotel selector allows over the
	// nightly rate (1.15 = 15%).
	HotelFlex float64
}

func DefaultPolicy() Policy {
	return Policy{
		AccommodationShare: 0.55,
		ActivityShare:      0.30,
		FoodShare:          0.15,
		HotelFlex:          1.15,
	}
}

// PolicyFromEnv starts from the defaults and applies any env overrides.
// Overrides that do not form a sane split (each share in (0,1), sum <= 1)
// are ignored.
func PolicyFromEnv() Policy {
	p := DefaultPolicy()
	stay := envShare("BUDGET_STAY_PCT", p.AccommodationShare)
	act := envShare("BUDGET_ACTIVITY_PCT", p.ActivityShare)
	food := envShare("BUDGET_FOOD_PCT", p.FoodShare)
	if stay+act+food <= 1.0000001 {
		p.AccommodationShare, p.ActivityShare, p.FoodShare = stay, act, food
	}
	return p
}

func envShare(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v >= 1 {
		return fallback
	}
	return v
}

// Allocate splits a total trip budget into sub-budgets and a nightly rate.
// Shares are rounded half-up independently but clamped so they never sum
// past the total.
func Allocate(total, durationDays int, pol Policy) (models.BudgetAllocation, error) {
	if total <= 0 || durationDays <= 0 {
		return models.BudgetAllocation{}, fmt.Errorf("%w: total=%d durationDays=%d", ErrInvalidBudget, total, durationDays)
	}

	stay := roundShare(total, pol.AccommodationShare)
	act := roundShare(total, pol.ActivityShare)
	food := roundShare(total, pol.FoodShare)

	// Rounding three shares independently can overshoot by a unit or two;
	// shave the food share first, then activities.
	for stay+act+food > total {
		if food > 0 {
			food--
		} else if act > 0 {
			act--
		} else {
			stay--
		}
	}

	return models.BudgetAllocation{
		Total:         total,
		Accommodation: stay,
		Activities:    act,
		Food:          food,
		PerNight:      int(math.Round(float64(stay) / float64(durationDays))),
	}, nil
}

func roundShare(total int, share float64) int {
	return int(math.Round(float64(total) * share))
}
