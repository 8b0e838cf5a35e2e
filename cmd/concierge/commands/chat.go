// ABOUTME: Interactive chat command: read-eval-print loop over the router
// ABOUTME: Exit keywords end the session; blank lines are skipped
package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/concierge-standalone/internal/config"
	"github.com/harper/concierge-standalone/internal/router"
	"github.com/harper/concierge-standalone/internal/session"
)

// assistantLabel prefixes every reply printed by the loop
const assistantLabel = "Concierge:"

// exitKeywords end the interactive session, matched case-insensitively
var exitKeywords = map[string]bool{"quit": true, "exit": true, "goodbye": true}

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive assistant session",
		Long: `Start an interactive assistant session.

Each line you type is classified and routed to the matching capability:
weather lookups, date and time, arithmetic, or conversational AI.

Examples:
  What's the weather in Paris?
  What time is it?
  Calculate 15 * 23

Type 'quit', 'exit', or 'goodbye' to end the session.`,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	r, sess := buildAssistant(cfg)

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "%s Hello! I'm connected to various online services.\n", assistantLabel)
		fmt.Fprintln(out, "I can check weather, tell time, do calculations, and have conversations.")
		fmt.Fprintln(out, "Try: 'What's the weather in Paris?' or 'What time is it?' or 'Calculate 15 * 23'")
		fmt.Fprintln(out, "Type 'quit' to exit.")
		fmt.Fprintf(out, "Available services: %s\n", availableServices(sess))
	}

	return chatLoop(cmd, r, sess)
}

// chatLoop reads one line per turn until EOF or an exit keyword.
// Exit keywords never reach the router; neither do blank lines.
func chatLoop(cmd *cobra.Command, r *router.Router, sess *session.Session) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := scanner.Text()

		if exitKeywords[strings.ToLower(strings.TrimSpace(line))] {
			fmt.Fprintf(out, "%s Thanks for chatting! Stay connected!\n", assistantLabel)
			return nil
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		reply := r.Handle(cmd.Context(), line, sess)
		fmt.Fprintf(out, "%s %s\n", assistantLabel, reply)
	}
}
