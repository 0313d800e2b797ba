package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"wayfare/budget"
	"wayfare/catalog"
	"wayfare/models"
)

// ErrNoHotelAvailable means no lodging fits even after every fallback step.
var ErrNoHotelAvailable = errors.New("no hotel available")

// HotelOptions carries the selector knobs. Zero values take the documented
// defaults (rating 3.0, radius 5 km).
type HotelOptions struct {
	MinRating   float64
	MaxRadiusKm float64
}

func (o HotelOptions) withDefaults() HotelOptions {
	if o.MinRating == 0 {
		o.MinRating = 3.0
	}
	if o.MaxRadiusKm == 0 {
		o.MaxRadiusKm = 5.0
	}
	return o
}

// HotelSelection is the locked lodging for the whole trip, plus any
// relaxations the fallback ladder applied to find it.
type HotelSelection struct {
	Hotel models.HotelCandidate
	// PerNight is the nightly rate the selection was judged against; step
	// three of the ladder may raise it above the allocation's rate.
	PerNight int
	// ActivityDiverted is how much of the activity budget was redirected
	// into lodging (step three only).
	ActivityDiverted int
	Relaxations      []string
}

// SelectHotel picks one hotel for the trip. Candidates must fit the nightly
// rate (with the policy's flex headroom) and the rating floor, and sit
// within the radius when the city center is known. On an empty result the
// fallback ladder widens the radius, then lowers the rating floor, then
// diverts up to 10% of the activity budget into lodging.
func SelectHotel(ctx context.Context, store catalog.Store, destination string, alloc models.BudgetAllocation, durationDays int, pol budget.Policy, opts HotelOptions) (HotelSelection, error) {
	opts = opts.withDefaults()

	candidates, err := store.HotelsFor(ctx, destination)
	if err != nil {
		return HotelSelection{}, err
	}
	center, err := store.CenterOf(ctx, destination)
	if err != nil {
		return HotelSelection{}, err
	}

	type step struct {
		minRating  float64
		radiusKm   float64
		perNight   int
		diverted   int
		relaxation string
	}

	divert := int(math.Round(float64(alloc.Activities) * 0.10))
	boostedRate := int(math.Round(float64(alloc.Accommodation+divert) / float64(durationDays)))

	steps := []step{
		{opts.MinRating, opts.MaxRadiusKm, alloc.PerNight, 0, ""},
		{opts.MinRating, opts.MaxRadiusKm + 3, alloc.PerNight, 0, fmt.Sprintf("widened search radius to %.0f km", opts.MaxRadiusKm+3)},
		{2.5, opts.MaxRadiusKm + 3, alloc.PerNight, 0, "lowered minimum rating to 2.5"},
		{2.0, opts.MaxRadiusKm + 3, boostedRate, divert, fmt.Sprintf("redirected %d from the activity budget into lodging", divert)},
	}

	var relaxations []string
	for _, st := range steps {
		if st.relaxation != "" {
			relaxations = append(relaxations, st.relaxation)
		}
		maxPrice := int(math.Floor(float64(st.perNight) * pol.HotelFlex))
		pool := filterHotels(candidates, maxPrice, st.minRating)
		if center != nil {
			pool = catalog.FilterHotelsByProximity(pool, *center, st.radiusKm)
		}
		if len(pool) == 0 {
			continue
		}
		sortHotels(pool)
		return HotelSelection{
			Hotel:            pool[0],
			PerNight:         st.perNight,
			ActivityDiverted: st.diverted,
			Relaxations:      append([]string(nil), relaxations...),
		}, nil
	}

	return HotelSelection{}, fmt.Errorf("%w: destination %q, nightly budget %d", ErrNoHotelAvailable, destination, alloc.PerNight)
}

func filterHotels(hotels []models.HotelCandidate, maxPrice int, minRating float64) []models.HotelCandidate {
	var out []models.HotelCandidate
	for _, h := range hotels {
		if h.PricePerNight <= maxPrice && h.Rating >= minRating {
			out = append(out, h)
		}
	}
	return out
}

// sortHotels orders by rating, review score, review count, then id for a
// deterministic pick.
func sortHotels(hotels []models.HotelCandidate) {
	sort.Slice(hotels, func(i, j int) bool {
		a, b := hotels[i], hotels[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.ReviewScore != b.ReviewScore {
			return a.ReviewScore > b.ReviewScore
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.ID < b.ID
	})
}
