package budget

import (
	"errors"
	"math"
	"testing"
)

func TestAllocateReferenceTrip(t *testing.T) {
	alloc, err := Allocate(2000, 7, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alloc.Accommodation != 1100 {
		t.Errorf("accommodation = %d, want 1100", alloc.Accommodation)
	}
	if alloc.Activities != 600 {
		t.Errorf("activities = %d, want 600", alloc.Activities)
	}
	if alloc.Food != 300 {
		t.Errorf("food = %d, want 300", alloc.Food)
	}
	if alloc.PerNight != 157 {
		t.Errorf("perNight = %d, want 157", alloc.PerNight)
	}
}

func TestAllocateNeverOverAllocates(t *testing.T) {
	pol := DefaultPolicy()
	for total := 1; total <= 5000; total += 37 {
		for days := 1; days <= 21; days++ {
			alloc, err := Allocate(total, days, pol)
			if err != nil {
				t.Fatalf("Allocate(%d,%d): %v", total, days, err)
			}
			sum := alloc.Accommodation + alloc.Activities + alloc.Food
			if sum > total {
				t.Fatalf("Allocate(%d,%d): shares sum to %d > total", total, days, sum)
			}
			if total-sum > 2 {
				t.Fatalf("Allocate(%d,%d): %d units left unallocated", total, days, total-sum)
			}
			wantNight := int(math.Round(float64(alloc.Accommodation) / float64(days)))
			if alloc.PerNight != wantNight {
				t.Fatalf("Allocate(%d,%d): perNight %d != %d", total, days, alloc.PerNight, wantNight)
			}
		}
	}
}

func TestAllocateRejectsBadInput(t *testing.T) {
	for _, c := range []struct{ total, days int }{
		{0, 7}, {-100, 7}, {2000, 0}, {2000, -1},
	} {
		if _, err := Allocate(c.total, c.days, DefaultPolicy()); !errors.Is(err, ErrInvalidBudget) {
			t.Errorf("Allocate(%d,%d) = %v, want ErrInvalidBudget", c.total, c.days, err)
		}
	}
}

func TestPolicyFromEnvIgnoresBrokenSplit(t *testing.T) {
	t.Setenv("BUDGET_STAY_PCT", "0.9")
	t.Setenv("BUDGET_ACTIVITY_PCT", "0.9")
	t.Setenv("BUDGET_FOOD_PCT", "0.9")
	p := PolicyFromEnv()
	if p.AccommodationShare != 0.55 || p.ActivityShare != 0.30 || p.FoodShare != 0.15 {
		t.Errorf("broken env split should fall back to defaults, got %+v", p)
	}
}

func TestPolicyFromEnvOverride(t *testing.T) {
	t.Setenv("BUDGET_STAY_PCT", "0.5")
	t.Setenv("BUDGET_ACTIVITY_PCT", "0.3")
	t.Setenv("BUDGET_FOOD_PCT", "0.2")
	p := PolicyFromEnv()
	if p.AccommodationShare != 0.5 || p.FoodShare != 0.2 {
		t.Errorf("env override not applied: %+v", p)
	}
}
