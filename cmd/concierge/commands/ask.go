// ABOUTME: One-shot ask command: route a single utterance and print the reply
// ABOUTME: Useful for scripting; the session lives only for the one exchange
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/concierge-standalone/internal/config"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [utterance]",
		Short: "Ask the assistant a single question",
		Long: `Ask the assistant a single question and print the reply.

Examples:
  concierge ask "What's the weather in Tokyo?"
  concierge ask "Calculate 15 * 23"
  echo "What time is it?" | concierge ask`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	var utterance string
	if len(args) > 0 {
		utterance = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		utterance = string(data)
	}

	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return fmt.Errorf("no utterance provided")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	r, sess := buildAssistant(cfg)

	reply := r.Handle(cmd.Context(), utterance, sess)
	fmt.Fprintln(cmd.OutOrStdout(), reply)

	if verbose {
		fmt.Fprintf(os.Stderr, "Recorded %d turn(s) this session\n", sess.History.Len())
	}
	return nil
}
