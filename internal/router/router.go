// ABOUTME: ServiceRouter dispatches classified utterances to capability handlers
// ABOUTME: Converts every failure class to reply text; errors never escape
package router

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/harper/concierge-standalone/internal/calc"
	"github.com/harper/concierge-standalone/internal/clock"
	"github.com/harper/concierge-standalone/internal/config"
	"github.com/harper/concierge-standalone/internal/intent"
	"github.com/harper/concierge-standalone/internal/llm"
	"github.com/harper/concierge-standalone/internal/models"
	"github.com/harper/concierge-standalone/internal/session"
	"github.com/harper/concierge-standalone/internal/weather"
)

// systemPreamble opens every message list sent to the AI backend
const systemPreamble = "You are a helpful AI assistant integrated into a chatbot. Be concise but informative."

// Fixed degradation messages
const (
	weatherKeyNeededMsg = "I'd love to check the weather, but I need a weather API key to access current data."
	calcGuidanceMsg     = "I couldn't calculate that. Please use a format like '2 + 3' or '10 * 5'"
)

// cityPrepositions precede a city name in a weather utterance
var cityPrepositions = map[string]bool{"in": true, "at": true, "for": true}

// generalFallbacks answer general chat when no AI credential is present
var generalFallbacks = []string{
	"That's interesting! Tell me more about what you're thinking.",
	"I'd love to hear more about that topic from your perspective.",
	"Great point! What led you to think about this?",
	"That's a fascinating subject! What aspects interest you most?",
}

// aiFallbacks answer AI-chat requests when no AI credential is present.
// A distinct pool from generalFallbacks: these acknowledge the missing model.
var aiFallbacks = []string{
	"That's a thoughtful question! I'd need access to advanced AI models to give you a comprehensive answer.",
	"Interesting topic! For detailed analysis like this, I'd typically use more advanced language models.",
	"Great question! This is the kind of complex query that benefits from larger AI models with extensive training.",
	"I find that fascinating! For in-depth responses like this, I'd normally leverage more sophisticated AI systems.",
}

// Router routes utterances to the capability matching their intent
type Router struct {
	classifier   *intent.Classifier
	weather      weather.Client
	ai           llm.Client
	clock        *clock.Service
	defaultCity  string
	contextTurns int
	verbose      bool
}

// NewRouter creates a Router. The weather and ai clients may be nil when the
// corresponding credential is absent; availability gates their use.
func NewRouter(cfg *config.Config, weatherClient weather.Client, aiClient llm.Client, clockService *clock.Service) *Router {
	return &Router{
		classifier:   intent.NewClassifier(),
		weather:      weatherClient,
		ai:           aiClient,
		clock:        clockService,
		defaultCity:  cfg.DefaultCity,
		contextTurns: cfg.ContextTurns,
	}
}

// SetVerbose enables diagnostic logging of degraded calls
func (r *Router) SetVerbose(v bool) {
	r.verbose = v
}

// Handle classifies the utterance, produces the reply, and records the turn
// in the session history. It never returns an error: every failure becomes
// user-facing text.
func (r *Router) Handle(ctx context.Context, utterance string, sess *session.Session) string {
	detected := r.classifier.Classify(utterance)

	var reply string
	switch detected {
	case models.IntentWeather:
		reply = r.handleWeather(ctx, utterance, sess)
	case models.IntentTime:
		reply = r.clock.Now()
	case models.IntentCalculation:
		reply = r.handleCalculation(utterance)
	case models.IntentAIChat:
		reply = r.handleAIChat(ctx, utterance, sess)
	default:
		reply = r.handleGeneralChat(ctx, utterance, sess)
	}

	turn, err := models.NewTurn(utterance, reply)
	if err == nil {
		sess.History.Append(turn)
	}

	return reply
}

// handleWeather extracts a city and delegates to the weather provider
func (r *Router) handleWeather(ctx context.Context, utterance string, sess *session.Session) string {
	city := r.extractCity(utterance)

	if !sess.Availability.Weather || r.weather == nil {
		return weatherKeyNeededMsg
	}

	report, err := r.weather.Current(ctx, city)
	if err != nil {
		if r.verbose {
			log.Printf("weather call failed: %v", err)
		}
		if errors.Is(err, weather.ErrBadStatus) {
			return fmt.Sprintf("Sorry, I couldn't get weather data for %s. Please check the city name.", city)
		}
		return fmt.Sprintf("Weather service is currently unavailable: %v", err)
	}

	return fmt.Sprintf("Weather in %s: %s, %s°C (feels like %s°C), humidity %d%%",
		city, capitalize(report.Description), formatDegrees(report.Temp), formatDegrees(report.FeelsLike), report.Humidity)
}

// extractCity scans for a preposition and takes the single following token.
// No punctuation trimming and no multi-word cities; unmatched input falls
// back to the configured default city.
func (r *Router) extractCity(utterance string) string {
	words := strings.Fields(utterance)
	for i, word := range words {
		if cityPrepositions[strings.ToLower(word)] && i+1 < len(words) {
			return words[i+1]
		}
	}
	return r.defaultCity
}

func (r *Router) handleCalculation(utterance string) string {
	result, err := calc.Calculate(utterance)
	if err != nil {
		return calcGuidanceMsg
	}
	return fmt.Sprintf("The answer is: %s", result)
}

func (r *Router) handleAIChat(ctx context.Context, utterance string, sess *session.Session) string {
	if !sess.Availability.AI || r.ai == nil {
		return aiFallbacks[sess.Rand.Intn(len(aiFallbacks))]
	}
	return r.completeChat(ctx, utterance, sess)
}

func (r *Router) handleGeneralChat(ctx context.Context, utterance string, sess *session.Session) string {
	if !sess.Availability.AI || r.ai == nil {
		return generalFallbacks[sess.Rand.Intn(len(generalFallbacks))]
	}
	return r.completeChat(ctx, utterance, sess)
}

func (r *Router) completeChat(ctx context.Context, utterance string, sess *session.Session) string {
	messages := r.buildMessages(utterance, sess)

	reply, err := r.ai.Complete(ctx, messages)
	if err != nil {
		if r.verbose {
			log.Printf("chat completion failed: %v", err)
		}
		return fmt.Sprintf("AI service temporarily unavailable (%v)", err)
	}
	return reply
}

// buildMessages assembles the context window: system preamble, the most
// recent turns expanded to user/assistant pairs in order, then the utterance.
func (r *Router) buildMessages(utterance string, sess *session.Session) []models.Message {
	recent := sess.History.Recent(r.contextTurns)

	messages := make([]models.Message, 0, 2+2*len(recent))
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: systemPreamble})

	for _, turn := range recent {
		messages = append(messages, models.Message{Role: models.RoleUser, Content: turn.UserMessage})
		messages = append(messages, models.Message{Role: models.RoleAssistant, Content: turn.BotResponse})
	}

	messages = append(messages, models.Message{Role: models.RoleUser, Content: utterance})
	return messages
}

// capitalize uppercases the first rune of a weather description
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// formatDegrees renders a temperature without trailing zeros
func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
