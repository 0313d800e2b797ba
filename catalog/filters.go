package catalog

import (
	"strings"

	"wayfare/geo"
	"wayfare/models"
)

// FilterByTags keeps activities where any requested tag matches any of the
// activity's tags or its type name (substring, case-insensitive). Empty tag
// lists keep everything.
func FilterByTags(activities []models.ActivityCandidate, tags []string) []models.ActivityCandidate {
	if len(tags) == 0 {
		return activities
	}
	var out []models.ActivityCandidate
	for _, a := range activities {
		if MatchesAnyTag(a, tags) {
			out = append(out, a)
		}
	}
	return out
}

// MatchesAnyTag reports whether any requested tag matches the activity.
func MatchesAnyTag(a models.ActivityCandidate, tags []string) bool {
	for _, tag := range tags {
		if tagMatches(a, tag) {
			return true
		}
	}
	return false
}

// TagMatchCount counts how many requested tags match the activity; the
// scheduler uses it as the preference score.
func TagMatchCount(a models.ActivityCandidate, tags []string) int {
	n := 0
	for _, tag := range tags {
		if tagMatches(a, tag) {
			n++
		}
	}
	return n
}

func tagMatches(a models.ActivityCandidate, tag string) bool {
	want := strings.ToLower(strings.TrimSpace(tag))
	if want == "" {
		return false
	}
	for _, have := range a.Tags {
		have = strings.ToLower(have)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	typ := strings.ToLower(string(a.Type))
	return strings.Contains(typ, want) || strings.Contains(want, typ)
}

// FilterActivitiesByProximity keeps activities within maxKm of origin.
// Candidates with no coordinates are treated as unconstrained and kept.
func FilterActivitiesByProximity(activities []models.ActivityCandidate, origin models.Coordinates, maxKm float64) []models.ActivityCandidate {
	var out []models.ActivityCandidate
	for _, a := range activities {
		if a.Location == nil || geo.DistanceKm(origin, *a.Location) <= maxKm {
			out = append(out, a)
		}
	}
	return out
}

// FilterHotelsByProximity keeps hotels within maxKm of origin, plus any
// hotel lacking coordinates.
func FilterHotelsByProximity(hotels []models.HotelCandidate, origin models.Coordinates, maxKm float64) []models.HotelCandidate {
	var out []models.HotelCandidate
	for _, h := range hotels {
		if h.Location == nil || geo.DistanceKm(origin, *h.Location) <= maxKm {
			out = append(out, h)
		}
	}
	return out
}
