package chat

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// Client-to-server actions.
const (
	ActionJoin    = "join"
	ActionLeave   = "leave"
	ActionMessage = "message"
)

// Server-to-client event types.
const (
	EventMessage = "message"
	EventHistory = "history"
	EventError   = "error"
)

// Command is the inbound envelope on a chat connection. HobbyID names the
// room; Content is only set for message commands.
type Command struct {
	Action  string `json:"action"`
	HobbyID uint   `json:"hobby_id"`
	Content string `json:"content"`
}

// Event is the outbound envelope pushed to connected clients.
type Event struct {
	Type    string `json:"type"`
	HobbyID uint   `json:"hobby_id,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// MessageResponse is one chat message as delivered to clients.
type MessageResponse struct {
	ID        uint      `json:"id"`
	HobbyID   uint      `json:"hobby_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessageResponse(m *domain.ChatMessage) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID,
		HobbyID:   m.HobbyID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		resp.UserName = m.User.Name
	}
	return resp
}
