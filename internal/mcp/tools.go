// ABOUTME: MCP tool definitions and registration for the concierge server
// ABOUTME: Exposes chat routing, history inspection, and service availability
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/concierge-standalone/internal/router"
	"github.com/harper/concierge-standalone/internal/session"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, r *router.Router, sess *session.Session) *Handlers {
	handlers := &Handlers{
		router:  r,
		session: sess,
	}

	// 1. chat - Route one utterance through the assistant
	server.AddTool(mcp.Tool{
		Name:        "chat",
		Description: "Send an utterance to the assistant. The utterance is classified (weather, time, calculation, AI chat, or general chat), routed to the matching capability, and the reply is returned. The exchange is recorded in the session history.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User utterance to route",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.Chat)

	// 2. conversation_history - Inspect recorded turns
	server.AddTool(mcp.Tool{
		Name:        "conversation_history",
		Description: "Return recorded conversation turns for this session, oldest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"max_turns": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of most recent turns to return (default: all)",
				},
			},
		},
	}, handlers.ConversationHistory)

	// 3. list_services - Report which capabilities are available
	server.AddTool(mcp.Tool{
		Name:        "list_services",
		Description: "List assistant capabilities and whether each is available this session. Weather and AI chat require credentials; time and calculator are always available.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListServices)

	return handlers
}
