// ABOUTME: Session carries per-session state: history, availability, and RNG
// ABOUTME: Explicit value passed into the router, replacing ambient globals
package session

import (
	"math/rand"
	"time"

	"github.com/harper/concierge-standalone/internal/config"
)

// Availability records which external collaborators are usable this session.
// Computed once at session start from credential presence, read-only after.
type Availability struct {
	Weather bool
	AI      bool
}

// Session owns the conversation state for one interactive session
type Session struct {
	History      *History
	Availability Availability
	Rand         *rand.Rand
}

// New creates a session from configuration with a time-seeded RNG
func New(cfg *config.Config) *Session {
	return NewWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a session with a caller-supplied RNG source.
// Tests pass a fixed seed so fallback selection is reproducible.
func NewWithRand(cfg *config.Config, rng *rand.Rand) *Session {
	return &Session{
		History: NewHistory(),
		Availability: Availability{
			Weather: cfg.HasWeather(),
			AI:      cfg.HasAI(),
		},
		Rand: rng,
	}
}
