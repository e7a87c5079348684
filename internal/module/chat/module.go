package chat

import "github.com/gin-gonic/gin"

// ChatModule implements the app.Module interface for the hobby-room chat.
type ChatModule struct {
	handler *ChatHandler
}

// NewModule creates a new ChatModule with the given handler.
// Panics if h is nil.
func NewModule(h *ChatHandler) *ChatModule {
	if h == nil {
		panic("chat.NewModule: handler must not be nil")
	}
	return &ChatModule{handler: h}
}

// RegisterRoutes registers the websocket endpoint. Connecting requires a
// valid bearer token.
func (m *ChatModule) RegisterRoutes(public, authed, admin *gin.RouterGroup) {
	authed.GET("/chat/ws", m.handler.Serve)
}
