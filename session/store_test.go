package session

import (
	"errors"
	"sync"
	"testing"

	"wayfare/models"
)

func TestUpdateCreatesOnFirstUse(t *testing.T) {
	store := NewMemoryStore()
	err := store.Update("c1", func(s *Session) {
		if s.State != models.StateGatheringCore {
			t.Errorf("fresh session state = %s", s.State)
		}
		s.Requirements.Destination = "Italy"
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, ok := store.Peek("c1")
	if !ok || got.Requirements.Destination != "Italy" {
		t.Errorf("Peek after update: ok=%v dest=%q", ok, got.Requirements.Destination)
	}
}

func TestClearResetsSession(t *testing.T) {
	store := NewMemoryStore()
	store.Update("c1", func(s *Session) {
		s.Requirements.Destination = "Italy"
		s.Prefs.Begin([]string{"q1"})
	})

	store.Clear("c1")
	store.Clear("c1") // idempotent

	err := store.Update("c1", func(s *Session) {
		if s.Requirements.Destination != "" {
			t.Errorf("destination survived clear: %q", s.Requirements.Destination)
		}
		if s.Prefs.Started() {
			t.Errorf("preference flow survived clear")
		}
	})
	if err != nil {
		t.Fatalf("Update after clear: %v", err)
	}
}

func TestClearDuringUpdateIsStale(t *testing.T) {
	store := NewMemoryStore()
	store.Update("c1", func(s *Session) {})

	err := store.Update("c1", func(s *Session) {
		// a clear lands while this turn holds the session
		store.Clear("c1")
		s.Requirements.Destination = "Italy"
	})
	if !errors.Is(err, ErrStaleState) {
		t.Fatalf("want ErrStaleState, got %v", err)
	}

	got, _ := store.Peek("c1")
	if got.Requirements.Destination != "" {
		t.Errorf("stale write leaked into the fresh session")
	}
}

func TestUpdatesForOneConversationSerialize(t *testing.T) {
	store := NewMemoryStore()
	const turns = 200

	var wg sync.WaitGroup
	for i := 0; i < turns; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Update("c1", func(s *Session) {
				// non-atomic read-modify-write; interleaving would lose counts
				s.Requirements.DurationDays++
			})
		}()
	}
	wg.Wait()

	got, _ := store.Peek("c1")
	if got.Requirements.DurationDays != turns {
		t.Errorf("lost updates: %d of %d", got.Requirements.DurationDays, turns)
	}
}
