// ABOUTME: Tests for session construction and availability flags
// ABOUTME: Availability derives from credential presence at session start
package session

import (
	"math/rand"
	"testing"

	"github.com/harper/concierge-standalone/internal/config"
)

func TestNew_Availability(t *testing.T) {
	tests := []struct {
		name        string
		weatherKey  string
		openAIKey   string
		wantWeather bool
		wantAI      bool
	}{
		{
			name:        "both credentials",
			weatherKey:  "wkey",
			openAIKey:   "okey",
			wantWeather: true,
			wantAI:      true,
		},
		{
			name:        "weather only",
			weatherKey:  "wkey",
			wantWeather: true,
		},
		{
			name:      "ai only",
			openAIKey: "okey",
			wantAI:    true,
		},
		{
			name: "no credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				WeatherAPIKey: tt.weatherKey,
				OpenAIKey:     tt.openAIKey,
				DefaultCity:   "London",
				MaxTokens:     150,
				ContextTurns:  3,
			}

			sess := New(cfg)

			if sess.Availability.Weather != tt.wantWeather {
				t.Errorf("Availability.Weather = %v, want %v", sess.Availability.Weather, tt.wantWeather)
			}
			if sess.Availability.AI != tt.wantAI {
				t.Errorf("Availability.AI = %v, want %v", sess.Availability.AI, tt.wantAI)
			}
			if sess.History == nil || sess.History.Len() != 0 {
				t.Error("new session should start with empty history")
			}
			if sess.Rand == nil {
				t.Error("new session should have an RNG")
			}
		})
	}
}

func TestNewWithRand_UsesProvidedSource(t *testing.T) {
	cfg := &config.Config{DefaultCity: "London", MaxTokens: 150}
	rng := rand.New(rand.NewSource(42))

	sess := NewWithRand(cfg, rng)

	if sess.Rand != rng {
		t.Error("session should keep the caller-supplied RNG")
	}
}
