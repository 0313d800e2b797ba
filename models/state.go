package models

// ConversationState is the coarse phase of a planning conversation. The
// preference sub-flow keeps its own tagged phase; this is the outer machine.
type ConversationState string

const (
	StateGatheringCore        ConversationState = "gathering_core"
	StateGatheringPreferences ConversationState = "gathering_preferences"
	StateReadyToGenerate      ConversationState = "ready_to_generate"
	StateGenerated            ConversationState = "generated"
)
