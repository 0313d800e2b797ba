package planner

import (
	"context"
	"errors"
	"testing"

	"wayfare/budget"
	"wayfare/catalog"
	"wayfare/models"
)

// stubStore lets tests force sparse catalogs onto the selector.
type stubStore struct {
	hotels     []models.HotelCandidate
	activities []models.ActivityCandidate
	center     *models.Coordinates
}

func (s *stubStore) Destinations(ctx context.Context) ([]string, error) { return nil, nil }
func (s *stubStore) HotelsFor(ctx context.Context, destination string) ([]models.HotelCandidate, error) {
	return s.hotels, nil
}
func (s *stubStore) ActivitiesFor(ctx context.Context, destination string) ([]models.ActivityCandidate, error) {
	return s.activities, nil
}
func (s *stubStore) CenterOf(ctx context.Context, destination string) (*models.Coordinates, error) {
	return s.center, nil
}

func mustAllocate(t *testing.T, total, days int) models.BudgetAllocation {
	t.Helper()
	alloc, err := budget.Allocate(total, days, budget.DefaultPolicy())
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	return alloc
}

func TestSelectHotelRespectsBudgetAndRating(t *testing.T) {
	store := catalog.NewMemoryStore()
	alloc := mustAllocate(t, 2000, 7)

	sel, err := SelectHotel(context.Background(), store, "Italy", alloc, 7, budget.DefaultPolicy(), HotelOptions{})
	if err != nil {
		t.Fatalf("SelectHotel: %v", err)
	}
	maxPrice := int(float64(alloc.PerNight) * 1.15)
	if sel.Hotel.PricePerNight > maxPrice {
		t.Errorf("hotel price %d exceeds %d", sel.Hotel.PricePerNight, maxPrice)
	}
	if sel.Hotel.Rating < 3.0 {
		t.Errorf("hotel rating %.1f below floor", sel.Hotel.Rating)
	}
	if len(sel.Relaxations) != 0 {
		t.Errorf("no relaxation expected, got %v", sel.Relaxations)
	}
	// highest-rated affordable candidate wins
	if sel.Hotel.ID != "hotel-it-01" {
		t.Errorf("selected %s, want hotel-it-01", sel.Hotel.ID)
	}
}

func TestSelectHotelFallbackReportsRelaxations(t *testing.T) {
	// Only a low-rated hotel fits the nightly rate; the ladder must lower
	// the rating floor and say so.
	store := &stubStore{hotels: []models.HotelCandidate{
		{ID: "cheap", Name: "Cheap Stay", PricePerNight: 60, Rating: 2.6},
		{ID: "fancy", Name: "Fancy", PricePerNight: 500, Rating: 4.9},
	}}
	alloc := mustAllocate(t, 800, 7)

	sel, err := SelectHotel(context.Background(), store, "Nowhere", alloc, 7, budget.DefaultPolicy(), HotelOptions{})
	if err != nil {
		t.Fatalf("SelectHotel: %v", err)
	}
	if sel.Hotel.ID != "cheap" {
		t.Fatalf("selected %s, want cheap", sel.Hotel.ID)
	}
	if len(sel.Relaxations) == 0 {
		t.Errorf("fallback must report its relaxations")
	}
}

func TestSelectHotelDivertsActivityBudgetLast(t *testing.T) {
	// perNight = round(550/5) = 110, flex cap 126. The only hotel costs 135
	// and only becomes affordable once activity money is diverted:
	// (550+30)/5 = 116 -> cap 133? No: 133 < 135. Use 140 price? Compute:
	// divert = round(300*0.10)=30, boosted = round(580/5)=116, cap 133.
	// Keep hotel at 130 so only step three reaches it.
	store := &stubStore{hotels: []models.HotelCandidate{
		{ID: "only", Name: "Only Option", PricePerNight: 130, Rating: 2.2},
	}}
	alloc := models.BudgetAllocation{Total: 1000, Accommodation: 550, Activities: 300, Food: 150, PerNight: 110}

	sel, err := SelectHotel(context.Background(), store, "Nowhere", alloc, 5, budget.DefaultPolicy(), HotelOptions{})
	if err != nil {
		t.Fatalf("SelectHotel: %v", err)
	}
	if sel.ActivityDiverted == 0 {
		t.Errorf("expected activity budget diversion")
	}
	if len(sel.Relaxations) == 0 {
		t.Errorf("diversion must be reported as a relaxation")
	}
}

func TestSelectHotelExhaustedLadder(t *testing.T) {
	store := &stubStore{hotels: []models.HotelCandidate{
		{ID: "way-out", Name: "Grand Palace", PricePerNight: 900, Rating: 5},
	}}
	alloc := mustAllocate(t, 700, 7)

	_, err := SelectHotel(context.Background(), store, "Nowhere", alloc, 7, budget.DefaultPolicy(), HotelOptions{})
	if !errors.Is(err, ErrNoHotelAvailable) {
		t.Fatalf("want ErrNoHotelAvailable, got %v", err)
	}
}

func TestBuildItineraryReferenceTrip(t *testing.T) {
	store := catalog.NewMemoryStore()
	ctx := context.Background()
	alloc := mustAllocate(t, 2000, 7)

	sel, err := SelectHotel(ctx, store, "Italy", alloc, 7, budget.DefaultPolicy(), HotelOptions{})
	if err != nil {
		t.Fatalf("SelectHotel: %v", err)
	}

	it, err := BuildItinerary(ctx, store, Input{
		Destination:  "Italy",
		DurationDays: 7,
		Selection:    sel,
		Allocation:   alloc,
		Preferences:  []string{"food", "history"},
	})
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}

	if len(it.Days) != 7 {
		t.Fatalf("day count = %d, want 7", len(it.Days))
	}
	if it.Days[0].Role != models.RoleArrival {
		t.Errorf("day 1 role = %s, want arrival", it.Days[0].Role)
	}
	if it.Days[6].Role != models.RoleDeparture {
		t.Errorf("day 7 role = %s, want departure", it.Days[6].Role)
	}
	for i := 1; i < 6; i++ {
		if it.Days[i].Role != models.RoleMiddle {
			t.Errorf("day %d role = %s, want middle", i+1, it.Days[i].Role)
		}
	}

	// no activity id reused across the trip
	seen := map[string]bool{}
	for _, day := range it.Days {
		for _, item := range day.Items {
			if item.ActivityID == "" {
				continue
			}
			if seen[item.ActivityID] {
				t.Errorf("activity %s scheduled twice", item.ActivityID)
			}
			seen[item.ActivityID] = true
		}
	}

	if it.OverBudget {
		t.Errorf("reference trip should fit the budget, remaining %d", it.RemainingBudget)
	}
	wantTotal := sel.Hotel.PricePerNight * 7
	if it.TotalCost < wantTotal {
		t.Errorf("total %d below hotel-only floor %d", it.TotalCost, wantTotal)
	}
	if it.RemainingBudget != alloc.Total-it.TotalCost {
		t.Errorf("remaining %d != total - cost", it.RemainingBudget)
	}
}

func TestBuildItinerarySubBudgetsNeverGoNegative(t *testing.T) {
	store := catalog.NewMemoryStore()
	ctx := context.Background()

	// Tiny budgets: most slots get omitted, nothing forces an overdraft.
	alloc := models.BudgetAllocation{Total: 400, Accommodation: 220, Activities: 40, Food: 30, PerNight: 44}
	sel := HotelSelection{Hotel: models.HotelCandidate{ID: "h", Name: "H", PricePerNight: 44}, PerNight: 44}

	it, err := BuildItinerary(ctx, store, Input{
		Destination:  "Italy",
		DurationDays: 5,
		Selection:    sel,
		Allocation:   alloc,
	})
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}

	actSpent, foodSpent := 0, 0
	for _, day := range it.Days {
		for _, item := range day.Items {
			if item.Type == models.ActivityRestaurant {
				foodSpent += item.Cost
			} else {
				actSpent += item.Cost
			}
		}
	}
	if actSpent > alloc.Activities {
		t.Errorf("activity spend %d exceeds budget %d", actSpent, alloc.Activities)
	}
	if foodSpent > alloc.Food {
		t.Errorf("food spend %d exceeds budget %d", foodSpent, alloc.Food)
	}
}

func TestBuildItinerarySingleDay(t *testing.T) {
	store := catalog.NewMemoryStore()
	alloc := mustAllocate(t, 600, 1)
	sel, err := SelectHotel(context.Background(), store, "Tokyo", alloc, 1, budget.DefaultPolicy(), HotelOptions{})
	if err != nil {
		t.Fatalf("SelectHotel: %v", err)
	}

	it, err := BuildItinerary(context.Background(), store, Input{
		Destination:  "Tokyo",
		DurationDays: 1,
		Selection:    sel,
		Allocation:   alloc,
	})
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}
	if len(it.Days) != 1 {
		t.Fatalf("day count = %d, want 1", len(it.Days))
	}
	day := it.Days[0]
	if day.Role != models.RoleArrival {
		t.Errorf("single day role = %s, want arrival", day.Role)
	}
	if day.Items[0].Name != "Hotel check-in" {
		t.Errorf("single day must start with check-in, got %q", day.Items[0].Name)
	}
	if last := day.Items[len(day.Items)-1]; last.Name != "Hotel checkout" {
		t.Errorf("single day must end with checkout, got %q", last.Name)
	}
}

func TestBuildItineraryEmptyCatalogStillProducesDays(t *testing.T) {
	store := &stubStore{}
	alloc := models.BudgetAllocation{Total: 1000, Accommodation: 550, Activities: 300, Food: 150, PerNight: 183}
	sel := HotelSelection{Hotel: models.HotelCandidate{ID: "h", Name: "H", PricePerNight: 150}, PerNight: 183}

	it, err := BuildItinerary(context.Background(), store, Input{
		Destination:  "Nowhere",
		DurationDays: 3,
		Selection:    sel,
		Allocation:   alloc,
	})
	if err != nil {
		t.Fatalf("BuildItinerary: %v", err)
	}
	if len(it.Days) != 3 {
		t.Fatalf("day count = %d, want 3", len(it.Days))
	}
	// only check-in/checkout logistics remain
	for _, day := range it.Days {
		for _, item := range day.Items {
			if item.ActivityID != "" {
				t.Errorf("unexpected scheduled activity %s with empty catalog", item.ActivityID)
			}
		}
	}
}
