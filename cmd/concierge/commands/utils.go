// ABOUTME: Shared wiring helpers for CLI commands
// ABOUTME: Builds the router, session, and collaborator clients from config
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/harper/concierge-standalone/internal/clock"
	"github.com/harper/concierge-standalone/internal/config"
	"github.com/harper/concierge-standalone/internal/llm"
	"github.com/harper/concierge-standalone/internal/router"
	"github.com/harper/concierge-standalone/internal/session"
	"github.com/harper/concierge-standalone/internal/weather"
)

// buildAssistant wires the router and a fresh session from configuration.
// Absent credentials leave the corresponding client nil; the router
// degrades instead of failing.
func buildAssistant(cfg *config.Config) (*router.Router, *session.Session) {
	var weatherClient weather.Client
	if cfg.HasWeather() {
		weatherClient = weather.NewHTTPClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout)
	}

	var aiClient llm.Client
	if cfg.HasAI() {
		client, err := llm.NewOpenAIClient(&llm.ClientConfig{
			APIKey:      cfg.OpenAIKey,
			ChatModel:   cfg.ChatModel,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
			Timeout:     cfg.AITimeout,
		})
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: could not initialize OpenAI client: %v\n", err)
			}
		} else {
			aiClient = client
		}
	}

	r := router.NewRouter(cfg, weatherClient, aiClient, clock.NewService())
	r.SetVerbose(verbose)

	sess := session.New(cfg)
	return r, sess
}

// availableServices lists the capabilities usable this session
func availableServices(sess *session.Session) string {
	services := []string{}
	if sess.Availability.Weather {
		services = append(services, "Weather")
	}
	if sess.Availability.AI {
		services = append(services, "AI Chat")
	}
	services = append(services, "Time/Date", "Calculator")
	return strings.Join(services, ", ")
}
