package dialogue

import "wayfare/models"

// preferenceQuestions is the bounded sub-flow queue, asked in order exactly
// once per conversation.
func preferenceQuestions() []string {
	return []string{
		"What kind of activities do you enjoy — history, food, art, nightlife, or the outdoors?",
		"Any must-see sights or experiences on your list?",
		"How do you like to pace your days — packed and adventurous, or relaxed?",
	}
}

// nextCoreQuestion picks the first unset core requirement in priority
// order. Activities is filled by the preference sub-flow, never asked here.
func nextCoreQuestion(f models.RequirementFlags) string {
	switch {
	case !f.Destination:
		return "Where would you like to go? I currently know Italy, Paris, and Tokyo."
	case !f.Duration:
		return "How many days are you planning to stay?"
	case !f.Budget:
		return "What's your total budget for the trip?"
	case !f.Travelers:
		return "How many people are traveling?"
	case !f.Departure:
		return "Where will you be traveling from?"
	case !f.Accommodation:
		return "What kind of accommodation do you prefer — budget, mid-range hotel, boutique, apartment, or luxury?"
	case !f.TravelStyle:
		return "What's your travel style — relaxed, adventurous, cultural, or romantic?"
	default:
		return "Anything else I should know about your trip?"
	}
}
