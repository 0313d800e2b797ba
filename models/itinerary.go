package models

import "time"

// BudgetAllocation is the derived split of a total trip budget. Immutable
// once computed; the three shares never sum above Total (rounding may leave
// a couple of units unallocated).
type BudgetAllocation struct {
	Total         int `json:"total" bson:"total"`
	Accommodation int `json:"accommodation" bson:"accommodation"`
	Activities    int `json:"activities" bson:"activities"`
	Food          int `json:"food" bson:"food"`
	PerNight      int `json:"per_night" bson:"per_night"`
}

type DayRole string

const (
	RoleArrival   DayRole = "arrival"
	RoleMiddle    DayRole = "middle"
	RoleDeparture DayRole = "departure"
)

// ItineraryItem is one scheduled entry of a day. Zero-cost logistics items
// (check-in, checkout) carry an empty ActivityID.
type ItineraryItem struct {
	ActivityID string       `json:"activity_id,omitempty" bson:"activity_id,omitempty"`
	Name       string       `json:"name" bson:"name"`
	Type       ActivityType `json:"type" bson:"type"`
	TimeSlot   TimeSlot     `json:"time_slot" bson:"time_slot"`
	Cost       int          `json:"cost" bson:"cost"`
}

type ItineraryDay struct {
	DayIndex int             `json:"day_index" bson:"day_index"` // 1..N
	Role     DayRole         `json:"role" bson:"role"`
	Items    []ItineraryItem `json:"items" bson:"items"`
	DayCost  int             `json:"day_cost" bson:"day_cost"`
}

// Itinerary is produced whole on each generation; it is never patched in
// place.
type Itinerary struct {
	Destination     string         `json:"destination" bson:"destination"`
	Hotel           HotelCandidate `json:"hotel" bson:"hotel"`
	Days            []ItineraryDay `json:"days" bson:"days"`
	TotalCost       int            `json:"total_cost" bson:"total_cost"`
	RemainingBudget int            `json:"remaining_budget" bson:"remaining_budget"`
	// OverBudget is set when a hotel fallback pushed the total past the
	// traveler's budget; callers must surface it, not swallow it.
	OverBudget  bool      `json:"over_budget" bson:"over_budget"`
	Relaxations []string  `json:"relaxations,omitempty" bson:"relaxations,omitempty"`
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
}

// Snapshot is the plain-data record handed to the host for persistence after
// a successful generation. The planner itself never writes storage.
type Snapshot struct {
	ConversationID string           `json:"conversation_id" bson:"conversation_id"`
	Requirements   TripRequirements `json:"requirements" bson:"requirements"`
	Itinerary      Itinerary        `json:"itinerary" bson:"itinerary"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
}
