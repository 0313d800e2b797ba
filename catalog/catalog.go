package catalog

import (
	"context"
	"strings"

	"wayfare/models"
)

// Store is the read-only catalog contract. Destination lookup is a
// case-insensitive exact match; an unknown destination yields empty slices,
// never an error — callers treat "no candidates" as a planning condition,
// not a fault.
type Store interface {
	Destinations(ctx context.Context) ([]string, error)
	HotelsFor(ctx context.Context, destination string) ([]models.HotelCandidate, error)
	ActivitiesFor(ctx context.Context, destination string) ([]models.ActivityCandidate, error)
	// CenterOf returns the destination's city-center point, nil if unknown.
	CenterOf(ctx context.Context, destination string) (*models.Coordinates, error)
}

type destinationData struct {
	Name       string
	Center     *models.Coordinates
	Hotels     []models.HotelCandidate
	Activities []models.ActivityCandidate
}

// MemoryStore serves the built-in seed data. It is immutable after
// construction and safe for concurrent reads.
type MemoryStore struct {
	destinations map[string]destinationData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{destinations: seedDestinations()}
}

func (s *MemoryStore) Destinations(ctx context.Context) ([]string, error) {
	out := make([]string, 0, len(s.destinations))
	for _, d := range s.destinations {
		out = append(out, d.Name)
	}
	return out, nil
}

func (s *MemoryStore) HotelsFor(ctx context.Context, destination string) ([]models.HotelCandidate, error) {
	d, ok := s.destinations[strings.ToLower(strings.TrimSpace(destination))]
	if !ok {
		return []models.HotelCandidate{}, nil
	}
	return append([]models.HotelCandidate(nil), d.Hotels...), nil
}

func (s *MemoryStore) ActivitiesFor(ctx context.Context, destination string) ([]models.ActivityCandidate, error) {
	d, ok := s.destinations[strings.ToLower(strings.TrimSpace(destination))]
	if !ok {
		return []models.ActivityCandidate{}, nil
	}
	return append([]models.ActivityCandidate(nil), d.Activities...), nil
}

func (s *MemoryStore) CenterOf(ctx context.Context, destination string) (*models.Coordinates, error) {
	d, ok := s.destinations[strings.ToLower(strings.TrimSpace(destination))]
	if !ok || d.Center == nil {
		return nil, nil
	}
	c := *d.Center
	return &c, nil
}
