// ABOUTME: History is the append-only ordered log of conversation turns
// ABOUTME: Storage never shrinks; only bounded views are handed out for context
package session

import "github.com/harper/concierge-standalone/internal/models"

// History records conversation turns in insertion order
type History struct {
	turns []*models.Turn
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Append records a turn. Turns are never reordered or removed.
func (h *History) Append(turn *models.Turn) {
	if turn == nil {
		return
	}
	h.turns = append(h.turns, turn)
}

// Len returns the number of recorded turns
func (h *History) Len() int {
	return len(h.turns)
}

// All returns every recorded turn in insertion order
func (h *History) All() []*models.Turn {
	return h.turns
}

// Recent returns a view of the last n turns, oldest first.
// The underlying storage is untouched.
func (h *History) Recent(n int) []*models.Turn {
	if n <= 0 {
		return nil
	}
	if n >= len(h.turns) {
		return h.turns
	}
	return h.turns[len(h.turns)-n:]
}
