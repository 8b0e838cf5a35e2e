// ABOUTME: End-to-end tests for the interactive chat loop
// ABOUTME: Drives the REPL through buffers with credentials absent
package commands

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"
)

// runChatWith executes `concierge --quiet chat` with the given input lines
func runChatWith(t *testing.T, input string) string {
	t.Helper()
	resetFlags()

	// No credentials: weather and AI degrade to local responses
	os.Clearenv()

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs([]string{"--quiet", "chat"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("chat command failed: %v", err)
	}
	return output.String()
}

func TestChat_CalculationEndToEnd(t *testing.T) {
	output := runChatWith(t, "Calculate 15 * 23\nquit\n")

	if !strings.Contains(output, "345") {
		t.Errorf("output %q should contain the result 345", output)
	}
	if !strings.Contains(output, assistantLabel) {
		t.Errorf("output %q should contain the assistant label", output)
	}
}

func TestChat_TimeEndToEnd(t *testing.T) {
	output := runChatWith(t, "What time is it?\nquit\n")

	pattern := regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
	if !pattern.MatchString(output) {
		t.Errorf("output %q should contain a YYYY-MM-DD HH:MM:SS timestamp", output)
	}
}

func TestChat_ExitKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit", "quit\n"},
		{"exit", "exit\n"},
		{"goodbye", "goodbye\n"},
		{"uppercase quit", "QUIT\n"},
		{"padded exit", "  exit  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := runChatWith(t, tt.input)

			if !strings.Contains(output, "Thanks for chatting") {
				t.Errorf("output %q should contain the farewell", output)
			}

			// The exit keyword must never reach the router: the farewell is
			// the only assistant line.
			if got := strings.Count(output, assistantLabel); got != 1 {
				t.Errorf("assistant label appears %d times, want 1 (farewell only)", got)
			}
		})
	}
}

func TestChat_BlankInputSkipped(t *testing.T) {
	output := runChatWith(t, "\n   \n\t\nquit\n")

	// Three blank lines then quit: only the farewell is printed
	if got := strings.Count(output, assistantLabel); got != 1 {
		t.Errorf("assistant label appears %d times, want 1", got)
	}
}

func TestChat_EOFTerminates(t *testing.T) {
	output := runChatWith(t, "Calculate 1 + 1\n")

	if !strings.Contains(output, "The answer is: 2") {
		t.Errorf("output %q should contain the calculation reply", output)
	}
}

func TestChat_WeatherWithoutKeyDegrades(t *testing.T) {
	output := runChatWith(t, "What's the weather in Paris?\nquit\n")

	if !strings.Contains(output, "I need a weather API key") {
		t.Errorf("output %q should contain the key-needed message", output)
	}
}

func TestChat_MultipleTurns(t *testing.T) {
	output := runChatWith(t, "Calculate 2 + 2\nCalculate 3 * 3\nquit\n")

	if !strings.Contains(output, "The answer is: 4") {
		t.Errorf("output %q should contain first reply", output)
	}
	if !strings.Contains(output, "The answer is: 9") {
		t.Errorf("output %q should contain second reply", output)
	}
}
