// ABOUTME: MCP tool handler implementations for the concierge server
// ABOUTME: Each handler converts failures to tool errors, never panics
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/concierge-standalone/internal/router"
	"github.com/harper/concierge-standalone/internal/session"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	router  *router.Router
	session *session.Session
}

// Chat handles the chat tool
func (h *Handlers) Chat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}

	reply := h.router.Handle(ctx, message, h.session)

	response := map[string]interface{}{
		"reply":       reply,
		"turns_total": h.session.History.Len(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ConversationHistory handles the conversation_history tool
func (h *Handlers) ConversationHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxTurns := request.GetInt("max_turns", h.session.History.Len())

	turns := h.session.History.Recent(maxTurns)

	response := map[string]interface{}{
		"turns":       turns,
		"turns_total": h.session.History.Len(),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListServices handles the list_services tool
func (h *Handlers) ListServices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"weather":    h.session.Availability.Weather,
		"ai_chat":    h.session.Availability.AI,
		"time_date":  true,
		"calculator": true,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
