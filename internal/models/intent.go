// ABOUTME: Intent is the closed-set classification of an utterance's purpose
// ABOUTME: Exactly one intent is assigned per utterance by the classifier
package models

// Intent represents the detected purpose of a user utterance
type Intent string

const (
	// IntentWeather - utterance asks about current weather conditions
	IntentWeather Intent = "weather"

	// IntentTime - utterance asks for the current date or time
	IntentTime Intent = "time"

	// IntentCalculation - utterance contains an arithmetic request
	IntentCalculation Intent = "calculation"

	// IntentAIChat - utterance asks for explanation, opinion, or advice
	IntentAIChat Intent = "ai_chat"

	// IntentGeneralChat - default when no other intent matches
	IntentGeneralChat Intent = "general_chat"
)
