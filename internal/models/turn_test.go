// ABOUTME: Tests for Turn model creation and validation
// ABOUTME: Verifies NewTurn constructor and field handling
package models

import (
	"strings"
	"testing"
)

func TestNewTurn(t *testing.T) {
	tests := []struct {
		name        string
		userMessage string
		botResponse string
		wantErr     bool
		errMsg      string
	}{
		{
			name:        "valid turn",
			userMessage: "What time is it?",
			botResponse: "Current date and time: 2026-01-02 15:04:05",
			wantErr:     false,
		},
		{
			name:        "empty user message",
			userMessage: "",
			botResponse: "Response",
			wantErr:     true,
			errMsg:      "user message cannot be empty",
		},
		{
			name:        "whitespace-only user message",
			userMessage: "   \t\n  ",
			botResponse: "Response",
			wantErr:     true,
			errMsg:      "user message cannot be empty",
		},
		{
			name:        "empty bot response is allowed",
			userMessage: "Question",
			botResponse: "",
			wantErr:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turn, err := NewTurn(tt.userMessage, tt.botResponse)

			if tt.wantErr {
				if err == nil {
					t.Fatal("NewTurn() error = nil, want error")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("NewTurn() error = %v, want containing %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewTurn() unexpected error: %v", err)
			}
			if turn.UserMessage != tt.userMessage {
				t.Errorf("UserMessage = %q, want %q", turn.UserMessage, tt.userMessage)
			}
			if turn.BotResponse != tt.botResponse {
				t.Errorf("BotResponse = %q, want %q", turn.BotResponse, tt.botResponse)
			}
			if turn.TurnID == "" {
				t.Error("TurnID should not be empty")
			}
			if !strings.HasPrefix(turn.TurnID, "turn_") {
				t.Errorf("TurnID = %q, want turn_ prefix", turn.TurnID)
			}
			if turn.Timestamp.IsZero() {
				t.Error("Timestamp should be set")
			}
		})
	}
}

func TestNewTurn_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		turn, err := NewTurn("hello", "hi")
		if err != nil {
			t.Fatalf("NewTurn() failed: %v", err)
		}
		if seen[turn.TurnID] {
			t.Fatalf("duplicate TurnID %q", turn.TurnID)
		}
		seen[turn.TurnID] = true
	}
}
