package chat

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/reignite/reignite/internal/middleware"
	"github.com/reignite/reignite/internal/pkg"
)

// ChatHandler upgrades authenticated requests to chat connections.
type ChatHandler struct {
	hub      *Hub
	service  Service
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new ChatHandler.
func NewHandler(hub *Hub, service Service, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		hub:     hub,
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Bearer auth already gates the endpoint; browser origins vary
			// across deployments.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the request and services the connection until it closes.
func (h *ChatHandler) Serve(c *gin.Context) {
	userID, err := middleware.MustUserID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h.hub, h.service, conn, h.logger, userID)
	client.run(c.Request.Context())
}
