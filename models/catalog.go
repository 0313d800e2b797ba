package models

// Coordinates is a WGS84 point. A nil *Coordinates means the catalog has no
// geodata for the entry; proximity filters must keep such candidates.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type ActivityType string

const (
	ActivitySightseeing   ActivityType = "sightseeing"
	ActivityRestaurant    ActivityType = "restaurant"
	ActivityGeneral       ActivityType = "activity"
	ActivityTransport     ActivityType = "transport"
	ActivityEntertainment ActivityType = "entertainment"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotFlexible  TimeSlot = "flexible"
)

type HotelCandidate struct {
	ID            string       `json:"id" bson:"id"`
	Name          string       `json:"name" bson:"name"`
	PricePerNight int          `json:"price_per_night" bson:"price_per_night"`
	Rating        float64      `json:"rating" bson:"rating"` // 0-5
	ReviewScore   float64      `json:"review_score" bson:"review_score"`
	ReviewCount   int          `json:"review_count" bson:"review_count"`
	Location      *Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Amenities     []string     `json:"amenities,omitempty" bson:"amenities,omitempty"`
}

type ActivityCandidate struct {
	ID       string       `json:"id" bson:"id"`
	Name     string       `json:"name" bson:"name"`
	Type     ActivityType `json:"type" bson:"type"`
	Cost     int          `json:"cost" bson:"cost"`
	TimeSlot TimeSlot     `json:"time_slot" bson:"time_slot"`
	Location *Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Tags     []string     `json:"tags,omitempty" bson:"tags,omitempty"`
}
