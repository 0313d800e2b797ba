package models

// TripRequirements is the mutable slot-filled record for one conversation.
// Zero values mean "not provided yet"; a later extraction may overwrite an
// already-set field.
type TripRequirements struct {
	Destination       string   `json:"destination" bson:"destination"`
	BudgetTotal       int      `json:"budget_total" bson:"budget_total"`
	DurationDays      int      `json:"duration_days" bson:"duration_days"`
	TravelerCount     int      `json:"traveler_count" bson:"traveler_count"`
	DepartureLocation string   `json:"departure_location" bson:"departure_location"`
	AccommodationType string   `json:"accommodation_type" bson:"accommodation_type"`
	TravelStyle       string   `json:"travel_style" bson:"travel_style"`
	Preferences       []string `json:"preferences" bson:"preferences"`
	SpecialRequests   []string `json:"special_requests,omitempty" bson:"special_requests,omitempty"`
}

// Activities is the derived view over Preferences. The two lists are kept
// mirrored on purpose: preferences are the single canonical tag list.
func (t *TripRequirements) Activities() []string {
	out := make([]string, len(t.Preferences))
	copy(out, t.Preferences)
	return out
}

// AddPreferences appends tags, skipping duplicates (case-preserved).
func (t *TripRequirements) AddPreferences(tags []string) {
	for _, tag := range tags {
		dup := false
		for _, have := range t.Preferences {
			if have == tag {
				dup = true
				break
			}
		}
		if !dup {
			t.Preferences = append(t.Preferences, tag)
		}
	}
}

// RequirementFlags records which requirements have been accepted so far.
type RequirementFlags struct {
	Destination   bool `json:"destination" bson:"destination"`
	Duration      bool `json:"duration" bson:"duration"`
	Budget        bool `json:"budget" bson:"budget"`
	Travelers     bool `json:"travelers" bson:"travelers"`
	Activities    bool `json:"activities" bson:"activities"`
	Accommodation bool `json:"accommodation" bson:"accommodation"`
	Departure     bool `json:"departure" bson:"departure"`
	TravelStyle   bool `json:"travel_style" bson:"travel_style"`
}

func (f RequirementFlags) Complete() bool {
	return f.Destination && f.Duration && f.Budget && f.Travelers &&
		f.Activities && f.Accommodation && f.Departure && f.TravelStyle
}

// Missing lists unset requirement names in a stable order.
func (f RequirementFlags) Missing() []string {
	var out []string
	for _, e := range []struct {
		name string
		set  bool
	}{
		{"destination", f.Destination},
		{"duration", f.Duration},
		{"budget", f.Budget},
		{"travelers", f.Travelers},
		{"activities", f.Activities},
		{"accommodation", f.Accommodation},
		{"departure", f.Departure},
		{"travel style", f.TravelStyle},
	} {
		if !e.set {
			out = append(out, e.name)
		}
	}
	return out
}

// PreferencePhase is the tagged state of the preference sub-flow. Keeping the
// phase explicit (instead of inferring it from the queue) is what makes
// re-entering a started or finished flow unrepresentable.
type PreferencePhase string

const (
	PhaseNotStarted PreferencePhase = "not_started"
	PhaseInProgress PreferencePhase = "in_progress"
	PhaseCompleted  PreferencePhase = "completed"
)

// PreferenceFlow is the bounded follow-up question sequence. It starts at
// most once per conversation; the phase never moves backwards.
type PreferenceFlow struct {
	Phase PreferencePhase `json:"phase" bson:"phase"`
	Queue []string        `json:"queue,omitempty" bson:"queue,omitempty"`
}

func NewPreferenceFlow() PreferenceFlow {
	return PreferenceFlow{Phase: PhaseNotStarted}
}

// Begin arms the flow with its question queue. It is a no-op unless the flow
// has never started; a re-extracted destination mid-flow (or after the flow
// finished) cannot restart it.
func (p *PreferenceFlow) Begin(questions []string) bool {
	if p.Phase != PhaseNotStarted {
		return false
	}
	if len(questions) == 0 {
		p.Phase = PhaseCompleted
		return false
	}
	p.Phase = PhaseInProgress
	p.Queue = append([]string(nil), questions...)
	return true
}

// Current returns the outstanding question, if any.
func (p *PreferenceFlow) Current() (string, bool) {
	if p.Phase != PhaseInProgress || len(p.Queue) == 0 {
		return "", false
	}
	return p.Queue[0], true
}

// Advance pops the answered question and returns the next one. When the
// queue drains the flow moves to PhaseCompleted for good.
func (p *PreferenceFlow) Advance() (next string, done bool) {
	if p.Phase != PhaseInProgress {
		return "", true
	}
	if len(p.Queue) > 0 {
		p.Queue = p.Queue[1:]
	}
	if len(p.Queue) == 0 {
		p.Phase = PhaseCompleted
		return "", true
	}
	return p.Queue[0], false
}

func (p *PreferenceFlow) Started() bool  { return p.Phase != PhaseNotStarted }
func (p *PreferenceFlow) Gathered() bool { return p.Phase == PhaseCompleted }
