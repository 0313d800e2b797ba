package planner

import (
	"context"
	"sort"
	"time"

	"wayfare/catalog"
	"wayfare/models"
)

// Input is everything the scheduler needs for one generation. The
// requirements record is read here, never written.
type Input struct {
	Destination  string
	DurationDays int
	Selection    HotelSelection
	Allocation   models.BudgetAllocation
	Preferences  []string
}

// BuildItinerary assembles one entry per trip day under the day-role
// templates, spending down the activity and food sub-budgets. A slot with no
// affordable unused candidate is omitted; the sub-budgets never go negative;
// no activity id is scheduled twice.
func BuildItinerary(ctx context.Context, store catalog.Store, in Input) (models.Itinerary, error) {
	pool, err := store.ActivitiesFor(ctx, in.Destination)
	if err != nil {
		return models.Itinerary{}, err
	}

	s := &schedule{
		pool:          pool,
		prefs:         in.Preferences,
		used:          make(map[string]bool),
		activityFunds: in.Allocation.Activities - in.Selection.ActivityDiverted,
		foodFunds:     in.Allocation.Food,
	}
	if s.activityFunds < 0 {
		s.activityFunds = 0
	}

	days := make([]models.ItineraryDay, 0, in.DurationDays)
	for idx := 1; idx <= in.DurationDays; idx++ {
		role := roleFor(idx, in.DurationDays)
		var items []models.ItineraryItem

		switch {
		case in.DurationDays == 1:
			// Arrival rules own the morning, departure rules the rest.
			items = append(items, checkIn())
			if a, ok := s.take(morningSightseeing, &s.activityFunds); ok {
				items = append(items, a)
			}
			items = append(items, checkOut())

		case role == models.RoleArrival:
			items = append(items, checkIn())
			if a, ok := s.take(eveningDining, &s.foodFunds); ok {
				items = append(items, a)
			}

		case role == models.RoleDeparture:
			if a, ok := s.take(morningSightseeing, &s.activityFunds); ok {
				items = append(items, a)
			}
			items = append(items, checkOut())

		default: // middle
			if a, ok := s.take(morningSightseeing, &s.activityFunds); ok {
				items = append(items, a)
			}
			if a, ok := s.take(afternoonActivity, &s.activityFunds); ok {
				items = append(items, a)
			}
			if a, ok := s.take(eveningDining, &s.foodFunds); ok {
				items = append(items, a)
			}
		}

		dayCost := 0
		for _, it := range items {
			dayCost += it.Cost
		}
		days = append(days, models.ItineraryDay{
			DayIndex: idx,
			Role:     role,
			Items:    items,
			DayCost:  dayCost,
		})
	}

	itemTotal := 0
	for _, d := range days {
		itemTotal += d.DayCost
	}
	totalCost := in.Selection.Hotel.PricePerNight*in.DurationDays + itemTotal
	remaining := in.Allocation.Total - totalCost

	return models.Itinerary{
		Destination:     in.Destination,
		Hotel:           in.Selection.Hotel,
		Days:            days,
		TotalCost:       totalCost,
		RemainingBudget: remaining,
		OverBudget:      remaining < 0,
		Relaxations:     in.Selection.Relaxations,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

func roleFor(dayIndex, durationDays int) models.DayRole {
	switch {
	case dayIndex == 1:
		return models.RoleArrival
	case dayIndex == durationDays:
		return models.RoleDeparture
	default:
		return models.RoleMiddle
	}
}

func checkIn() models.ItineraryItem {
	return models.ItineraryItem{Name: "Hotel check-in", Type: models.ActivityTransport, TimeSlot: models.SlotAfternoon}
}

func checkOut() models.ItineraryItem {
	return models.ItineraryItem{Name: "Hotel checkout", Type: models.ActivityTransport, TimeSlot: models.SlotMorning}
}

type schedule struct {
	pool          []models.ActivityCandidate
	prefs         []string
	used          map[string]bool
	activityFunds int
	foodFunds     int
}

type slotRule struct {
	slot  models.TimeSlot
	types []models.ActivityType
}

var (
	morningSightseeing = slotRule{models.SlotMorning, []models.ActivityType{models.ActivitySightseeing}}
	afternoonActivity  = slotRule{models.SlotAfternoon, []models.ActivityType{models.ActivityGeneral, models.ActivityEntertainment}}
	eveningDining      = slotRule{models.SlotEvening, []models.ActivityType{models.ActivityRestaurant}}
)

// take picks the best unused candidate for a slot that the remaining funds
// cover and spends them. Candidates are ranked by preference-tag matches,
// then cheaper first, then id.
func (s *schedule) take(rule slotRule, funds *int) (models.ItineraryItem, bool) {
	var eligible []models.ActivityCandidate
	for _, a := range s.pool {
		if s.used[a.ID] || a.Cost > *funds {
			continue
		}
		if a.TimeSlot != rule.slot && a.TimeSlot != models.SlotFlexible {
			continue
		}
		for _, t := range rule.types {
			if a.Type == t {
				eligible = append(eligible, a)
				break
			}
		}
	}
	if len(eligible) == 0 {
		return models.ItineraryItem{}, false
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		sa, sb := catalog.TagMatchCount(a, s.prefs), catalog.TagMatchCount(b, s.prefs)
		if sa != sb {
			return sa > sb
		}
		if a.Cost != b.Cost {
			return a.Cost < b.Cost
		}
		return a.ID < b.ID
	})

	pick := eligible[0]
	s.used[pick.ID] = true
	*funds -= pick.Cost
	return models.ItineraryItem{
		ActivityID: pick.ID,
		Name:       pick.Name,
		Type:       pick.Type,
		TimeSlot:   rule.slot,
		Cost:       pick.Cost,
	}, true
}
