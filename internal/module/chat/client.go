package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Client is one websocket connection. The read pump drives commands into the
// hub and service; the write pump is the only goroutine that writes to conn.
type Client struct {
	hub     *Hub
	service Service
	conn    *websocket.Conn
	logger  *slog.Logger

	userID uint

	mu     sync.Mutex
	joined map[uint]struct{}
	closed bool

	send      chan Event
	closeOnce sync.Once
}

func newClient(hub *Hub, service Service, conn *websocket.Conn, logger *slog.Logger, userID uint) *Client {
	return &Client{
		hub:     hub,
		service: service,
		conn:    conn,
		logger:  logger,
		userID:  userID,
		joined:  make(map[uint]struct{}),
		send:    make(chan Event, sendBufferSize),
	}
}

// run services the connection until it closes. It blocks the caller.
func (c *Client) run(ctx context.Context) {
	go c.writePump()
	c.readPump(ctx)
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.hub.removeClient(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("chat connection closed unexpectedly", "user_id", c.userID, "error", err)
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.sendError(0, "malformed command")
			continue
		}
		c.handleCommand(ctx, cmd)
	}
}

func (c *Client) handleCommand(ctx context.Context, cmd Command) {
	switch cmd.Action {
	case ActionJoin:
		c.handleJoin(ctx, cmd.HobbyID)
	case ActionLeave:
		c.hub.leave(c, cmd.HobbyID)
		c.setJoined(cmd.HobbyID, false)
	case ActionMessage:
		c.handleMessage(ctx, cmd)
	default:
		c.sendError(cmd.HobbyID, "unknown action")
	}
}

func (c *Client) handleJoin(ctx context.Context, hobbyID uint) {
	if err := c.service.CheckRoom(ctx, hobbyID); err != nil {
		c.sendError(hobbyID, "room does not exist")
		return
	}

	c.hub.join(c, hobbyID)
	c.setJoined(hobbyID, true)

	history, err := c.service.History(ctx, hobbyID)
	if err != nil {
		c.logger.Error("chat history load failed", "hobby_id", hobbyID, "error", err)
		return
	}
	c.trySend(Event{Type: EventHistory, HobbyID: hobbyID, Data: history})
}

func (c *Client) handleMessage(ctx context.Context, cmd Command) {
	if !c.isJoined(cmd.HobbyID) {
		c.sendError(cmd.HobbyID, "join the room before sending messages")
		return
	}

	msg, err := c.service.SaveMessage(ctx, cmd.HobbyID, c.userID, cmd.Content)
	if err != nil {
		c.sendError(cmd.HobbyID, "message must be 1-500 characters")
		return
	}
	c.hub.broadcast(cmd.HobbyID, Event{Type: EventMessage, HobbyID: cmd.HobbyID, Data: msg})
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend queues an event without blocking. False means the client is closed
// or its buffer is full.
func (c *Client) trySend(event Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

func (c *Client) sendError(hobbyID uint, msg string) {
	c.trySend(Event{Type: EventError, HobbyID: hobbyID, Data: msg})
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.send)
		_ = c.conn.Close()
	})
}

func (c *Client) setJoined(hobbyID uint, joined bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if joined {
		c.joined[hobbyID] = struct{}{}
	} else {
		delete(c.joined, hobbyID)
	}
}

func (c *Client) isJoined(hobbyID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.joined[hobbyID]
	return ok
}
