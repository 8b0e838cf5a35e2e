// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to use the assistant via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/concierge-standalone/internal/config"
	"github.com/harper/concierge-standalone/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the assistant as an MCP (Model Context Protocol) server over stdio,
exposing chat routing, history inspection, and service availability as tools.

The conversation history lives for the lifetime of the server process.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  concierge mcp

  # Configure in an MCP client's config:
  # {
  #   "mcpServers": {
  #     "concierge": {
  #       "command": "concierge",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.OpenAIKey == "" && !quiet {
		log.Println("Warning: OPENAI_API_KEY not set - AI chat will use local fallbacks")
	}
	if cfg.WeatherAPIKey == "" && !quiet {
		log.Println("Warning: WEATHER_API_KEY not set - weather lookups will be unavailable")
	}

	r, sess := buildAssistant(cfg)

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Concierge Assistant",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, r, sess)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Concierge MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
