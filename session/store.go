package session

import (
	"errors"
	"sync"

	"wayfare/models"
)

// ErrStaleState means a turn raced a conversation clear and lost; its work
// was discarded and the caller should ask the user to resend.
var ErrStaleState = errors.New("stale session state")

// Session is the per-conversation unit of state. It is only touched under
// the store's per-conversation lock.
type Session struct {
	ID           string                   `json:"id"`
	State        models.ConversationState `json:"state"`
	Requirements models.TripRequirements  `json:"requirements"`
	Flags        models.RequirementFlags  `json:"flags"`
	Prefs        models.PreferenceFlow    `json:"prefs"`
	// LastQuestion is re-emitted verbatim when a turn parses nothing.
	LastQuestion string            `json:"last_question,omitempty"`
	Itinerary    *models.Itinerary `json:"itinerary,omitempty"`
	Epoch        uint64            `json:"epoch"`
}

func newSession(id string, epoch uint64) *Session {
	return &Session{
		ID:    id,
		State: models.StateGatheringCore,
		Prefs: models.NewPreferenceFlow(),
		Epoch: epoch,
	}
}

// Store hands out serialized access to conversation sessions. Updates for
// one conversation never interleave; different conversations run in
// parallel.
type Store interface {
	// Update runs fn with exclusive access to the conversation's session,
	// creating it on first use. It returns ErrStaleState when the
	// conversation was cleared while the turn was in progress.
	Update(conversationID string, fn func(*Session)) error
	// Peek returns a copy of the session, if one exists.
	Peek(conversationID string) (Session, bool)
	// Clear atomically replaces the session with a fresh one. Idempotent.
	Clear(conversationID string)
}

type memoryEntry struct {
	mu   sync.Mutex
	sess *Session
}

// MemoryStore keeps sessions in-process: a map guarded by an RWMutex, one
// mutex per conversation for turn serialization, and an epoch counter per
// conversation so a clear invalidates in-flight turns.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	epochs  map[string]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*memoryEntry),
		epochs:  make(map[string]uint64),
	}
}

func (s *MemoryStore) entry(id string) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		e = &memoryEntry{sess: newSession(id, s.epochs[id])}
		s.entries[id] = e
	}
	return e
}

func (s *MemoryStore) currentEpoch(id string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epochs[id]
}

func (s *MemoryStore) Update(id string, fn func(*Session)) error {
	e := s.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	// A clear may have swapped the map entry between entry() and Lock();
	// this entry would then be detached and its epoch behind.
	if s.currentEpoch(id) != e.sess.Epoch {
		return ErrStaleState
	}
	fn(e.sess)
	if s.currentEpoch(id) != e.sess.Epoch {
		return ErrStaleState
	}
	return nil
}

func (s *MemoryStore) Peek(id string) (Session, bool) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.sess, true
}

func (s *MemoryStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epochs[id]++
	s.entries[id] = &memoryEntry{sess: newSession(id, s.epochs[id])}
}
