// ABOUTME: Message is the transport-neutral chat message handed to the AI backend
// ABOUTME: Role constants mirror the chat-completions system/user/assistant roles
package models

// Message roles understood by the conversational AI backend
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the ordered message list sent to the AI backend
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
