// ABOUTME: Classifier assigns exactly one intent to an utterance via keyword matching
// ABOUTME: Priority order is an explicit constant, not incidental map iteration
package intent

import (
	"strings"

	"github.com/harper/concierge-standalone/internal/models"
)

// priorityOrder fixes the tie-break between intents: the first intent in this
// sequence whose keywords match wins. An utterance mentioning both weather
// and math is a weather request.
var priorityOrder = []models.Intent{
	models.IntentWeather,
	models.IntentTime,
	models.IntentAIChat,
	models.IntentCalculation,
}

// keywords maps each intent to its trigger substrings.
// Matching is case-insensitive substring containment.
var keywords = map[models.Intent][]string{
	models.IntentWeather:     {"weather", "temperature", "forecast", "rain", "sunny", "cloudy"},
	models.IntentTime:        {"time", "date", "what time", "current time"},
	models.IntentAIChat:      {"tell me", "explain", "what do you think", "opinion", "advice"},
	models.IntentCalculation: {"calculate", "math", "plus", "minus", "multiply", "divide"},
}

// Classifier detects the intent of user utterances
type Classifier struct{}

// NewClassifier creates a Classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the first intent in priority order with a matching keyword,
// or IntentGeneralChat when nothing matches. Deterministic and side-effect free.
func (c *Classifier) Classify(utterance string) models.Intent {
	lower := strings.ToLower(utterance)

	for _, in := range priorityOrder {
		for _, kw := range keywords[in] {
			if strings.Contains(lower, kw) {
				return in
			}
		}
	}

	return models.IntentGeneralChat
}
