package dialogue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"wayfare/budget"
	"wayfare/catalog"
	"wayfare/models"
	"wayfare/planner"
	"wayfare/session"
)

// ErrIncompleteRequirements blocks generation while requirements are
// missing; the wrapped message names them.
var ErrIncompleteRequirements = errors.New("incomplete requirements")

// TurnResult is what one processed message produces: the assistant's reply
// and, on a generation turn, the finished itinerary.
type TurnResult struct {
	Reply     string            `json:"reply"`
	Itinerary *models.Itinerary `json:"itinerary"`
}

// Engine is the turn-by-turn dialogue state machine plus the generation
// pipeline it triggers once requirements are complete.
type Engine struct {
	catalog   catalog.Store
	sessions  session.Store
	sink      session.SnapshotSink
	policy    budget.Policy
	hotelOpts planner.HotelOptions

	extractorMu sync.Mutex
	extractor   *Extractor
}

func NewEngine(cat catalog.Store, sessions session.Store, sink session.SnapshotSink, pol budget.Policy) *Engine {
	if sink == nil {
		sink = session.NopSink{}
	}
	return &Engine{
		catalog:  cat,
		sessions: sessions,
		sink:     sink,
		policy:   pol,
	}
}

// ProcessTurn runs one inbound message through the conversation's state
// machine. Turns for the same conversation are serialized by the session
// store; a turn that loses a race with a clear returns
// session.ErrStaleState and changes nothing.
func (e *Engine) ProcessTurn(ctx context.Context, conversationID, message string) (TurnResult, error) {
	var res TurnResult
	var snap *models.Snapshot

	err := e.sessions.Update(conversationID, func(s *session.Session) {
		res, snap = e.step(ctx, s, message)
	})
	if err != nil {
		return TurnResult{}, err
	}

	if snap != nil {
		if err := e.sink.Publish(ctx, *snap); err != nil {
			log.Printf("dialogue: snapshot publish for %s failed: %v", conversationID, err)
		}
	}
	return res, nil
}

// Clear resets the conversation. Idempotent; an in-flight turn for the old
// session is discarded, never merged.
func (e *Engine) Clear(conversationID string) {
	e.sessions.Clear(conversationID)
}

// Itinerary returns the conversation's last generated itinerary, if any.
func (e *Engine) Itinerary(conversationID string) (*models.Itinerary, bool) {
	s, ok := e.sessions.Peek(conversationID)
	if !ok || s.Itinerary == nil {
		return nil, false
	}
	it := *s.Itinerary
	return &it, true
}

// Requirements returns a copy of the conversation's current requirements.
func (e *Engine) Requirements(conversationID string) (models.TripRequirements, bool) {
	s, ok := e.sessions.Peek(conversationID)
	if !ok {
		return models.TripRequirements{}, false
	}
	return s.Requirements, true
}

// step is the single-turn algorithm. It runs under the session lock.
func (e *Engine) step(ctx context.Context, s *session.Session, message string) (TurnResult, *models.Snapshot) {
	// A confirmed conversation generates before anything else gets a say.
	if s.State == models.StateReadyToGenerate && isConfirmation(message) {
		return e.generate(ctx, s)
	}

	x := e.extractorFor(ctx).Extract(message)
	updated := e.apply(s, x)
	destinationAccepted := x.Destination != ""

	// Preference sub-flow entry guard: a destination was just accepted AND
	// the flow has never started. Begin refuses anything else, so a
	// destination re-mentioned mid-flow or after completion cannot re-open
	// the flow or repeat its first question.
	if destinationAccepted && s.Prefs.Begin(preferenceQuestions()) {
		s.State = models.StateGatheringPreferences
		q, _ := s.Prefs.Current()
		reply := fmt.Sprintf("%s — great choice! %s", s.Requirements.Destination, q)
		s.LastQuestion = q
		return TurnResult{Reply: reply}, nil
	}

	// Active sub-flow: every turn is an answer. Collect tags, advance.
	if s.State == models.StateGatheringPreferences && !s.Prefs.Gathered() {
		if tags := ParsePreferenceTags(message); len(tags) > 0 {
			s.Requirements.AddPreferences(tags)
			updated = true
		}
		next, done := s.Prefs.Advance()
		if !done {
			s.LastQuestion = next
			return TurnResult{Reply: next}, nil
		}
		s.Flags.Activities = true
		s.State = models.StateGatheringCore
		updated = true
	}

	// Nothing matched in a state that expects specific input: repeat the
	// outstanding question verbatim, mutate nothing further.
	if !updated && x.Empty() {
		switch {
		case s.State == models.StateGenerated:
			return TurnResult{Reply: "Your itinerary is ready — ask for it any time, or clear the conversation to plan another trip."}, nil
		case s.LastQuestion != "":
			return TurnResult{Reply: s.LastQuestion}, nil
		default:
			q := nextCoreQuestion(s.Flags)
			s.LastQuestion = q
			return TurnResult{Reply: "Hi! I can plan a full trip for you — lodging, daily activities, and meals, all within your budget. " + q}, nil
		}
	}

	if s.Flags.Complete() {
		s.State = models.StateReadyToGenerate
		reply := e.summary(s) + "\n\nShall I create your itinerary?"
		s.LastQuestion = "Shall I create your itinerary?"
		return TurnResult{Reply: reply}, nil
	}

	q := nextCoreQuestion(s.Flags)
	s.LastQuestion = q
	return TurnResult{Reply: q}, nil
}

// apply copies extracted values into the requirements and flips the
// matching flags. Overwriting an already-set field is allowed; flags only
// ever move to true.
func (e *Engine) apply(s *session.Session, x Extraction) bool {
	updated := false
	if x.Destination != "" {
		s.Requirements.Destination = x.Destination
		s.Flags.Destination = true
		updated = true
	}
	if x.Budget > 0 {
		s.Requirements.BudgetTotal = x.Budget
		s.Flags.Budget = true
		updated = true
	}
	if x.DurationDays > 0 {
		s.Requirements.DurationDays = x.DurationDays
		s.Flags.Duration = true
		updated = true
	}
	if x.Travelers > 0 {
		s.Requirements.TravelerCount = x.Travelers
		s.Flags.Travelers = true
		updated = true
	}
	if x.Departure != "" {
		s.Requirements.DepartureLocation = x.Departure
		s.Flags.Departure = true
		updated = true
	}
	if x.Accommodation != "" {
		s.Requirements.AccommodationType = x.Accommodation
		s.Flags.Accommodation = true
		updated = true
	}
	if x.TravelStyle != "" {
		s.Requirements.TravelStyle = x.TravelStyle
		s.Flags.TravelStyle = true
		updated = true
	}
	return updated
}

// generate runs allocator -> hotel selector -> scheduler. All failures stay
// inside the conversation: the user gets guidance, the process never dies.
func (e *Engine) generate(ctx context.Context, s *session.Session) (TurnResult, *models.Snapshot) {
	if missing := s.Flags.Missing(); len(missing) > 0 {
		err := fmt.Errorf("%w: %s", ErrIncompleteRequirements, strings.Join(missing, ", "))
		log.Printf("dialogue: generation blocked for %s: %v", s.ID, err)
		return TurnResult{Reply: "I can't build the itinerary yet — I still need: " + strings.Join(missing, ", ") + "."}, nil
	}

	alloc, err := budget.Allocate(s.Requirements.BudgetTotal, s.Requirements.DurationDays, e.policy)
	if err != nil {
		return TurnResult{Reply: fmt.Sprintf("That budget doesn't work out (%d over %d days) — could you give me a positive total budget and trip length?",
			s.Requirements.BudgetTotal, s.Requirements.DurationDays)}, nil
	}

	sel, err := planner.SelectHotel(ctx, e.catalog, s.Requirements.Destination, alloc, s.Requirements.DurationDays, e.policy, e.hotelOpts)
	if err != nil {
		if errors.Is(err, planner.ErrNoHotelAvailable) {
			return TurnResult{Reply: fmt.Sprintf("I couldn't find any lodging in %s for about %d a night. A higher budget or a different destination would give me more to work with.",
				s.Requirements.Destination, alloc.PerNight)}, nil
		}
		log.Printf("dialogue: hotel selection for %s failed: %v", s.ID, err)
		return TurnResult{Reply: "Something went wrong while searching for hotels — please try again."}, nil
	}

	it, err := planner.BuildItinerary(ctx, e.catalog, planner.Input{
		Destination:  s.Requirements.Destination,
		DurationDays: s.Requirements.DurationDays,
		Selection:    sel,
		Allocation:   alloc,
		Preferences:  s.Requirements.Preferences,
	})
	if err != nil {
		log.Printf("dialogue: scheduling for %s failed: %v", s.ID, err)
		return TurnResult{Reply: "Something went wrong while scheduling your days — please try again."}, nil
	}

	s.Itinerary = &it
	s.State = models.StateGenerated
	s.LastQuestion = ""

	snap := &models.Snapshot{
		ConversationID: s.ID,
		Requirements:   s.Requirements,
		Itinerary:      it,
		CreatedAt:      time.Now().UTC(),
	}
	return TurnResult{Reply: e.itinerarySummary(s, it), Itinerary: &it}, snap
}

func (e *Engine) summary(s *session.Session) string {
	r := s.Requirements
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I have: %d days in %s for %d traveler(s), %d total budget, departing from %s, staying in %s accommodation, %s style.",
		r.DurationDays, r.Destination, r.TravelerCount, r.BudgetTotal, r.DepartureLocation, r.AccommodationType, r.TravelStyle)
	if len(r.Preferences) > 0 {
		fmt.Fprintf(&b, " You're into %s.", strings.Join(r.Preferences, ", "))
	}
	return b.String()
}

func (e *Engine) itinerarySummary(s *session.Session, it models.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Done! %d days in %s staying at %s. Total cost %d, leaving %d of your budget unspent.",
		len(it.Days), it.Destination, it.Hotel.Name, it.TotalCost, it.RemainingBudget)
	if it.OverBudget {
		fmt.Fprintf(&b, " Heads up: this plan runs %d over budget because lodging options were tight.", -it.RemainingBudget)
	}
	for _, rel := range it.Relaxations {
		fmt.Fprintf(&b, " Note: I %s to find you a hotel.", rel)
	}
	return b.String()
}

// extractorFor builds the extractor from the catalog's destination list.
// A failed load is not cached; the next turn retries, so a catalog outage
// at boot does not disable destination matching for the process lifetime.
func (e *Engine) extractorFor(ctx context.Context) *Extractor {
	e.extractorMu.Lock()
	defer e.extractorMu.Unlock()
	if e.extractor != nil {
		return e.extractor
	}
	dests, err := e.catalog.Destinations(ctx)
	if err != nil {
		log.Printf("dialogue: loading destinations failed: %v", err)
		return NewExtractor(nil)
	}
	e.extractor = NewExtractor(dests)
	return e.extractor
}

var (
	confirmationRe = regexp.MustCompile(`\b(yes|yeah|yep|sure|ok|okay|confirm|go ahead|sounds good|create|book it|do it|let's go|make it|please do)\b`)
	// "I'm not sure" contains "sure"; a negated message never confirms.
	negationRe = regexp.MustCompile(`\b(no|not|don't|dont|never|hold)\b`)
)

func isConfirmation(message string) bool {
	lower := strings.ToLower(message)
	if negationRe.MatchString(lower) {
		return false
	}
	return confirmationRe.MatchString(lower)
}
