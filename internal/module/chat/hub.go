package chat

import (
	"log/slog"
	"sync"
)

// Hub tracks which clients sit in which hobby room and fans events out to
// room members. Rooms spring into existence on first join and vanish when
// the last member leaves.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[uint]map[*Client]struct{}
	logger *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[uint]map[*Client]struct{}),
		logger: logger,
	}
}

func (h *Hub) join(c *Client, hobbyID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[hobbyID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[hobbyID] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(c *Client, hobbyID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c, hobbyID)
}

// removeClient drops the client from every room it joined. Called when the
// connection closes.
func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for hobbyID := range h.rooms {
		h.removeLocked(c, hobbyID)
	}
}

func (h *Hub) removeLocked(c *Client, hobbyID uint) {
	room, ok := h.rooms[hobbyID]
	if !ok {
		return
	}
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, hobbyID)
	}
}

// broadcast queues an event for every member of the room. Clients whose send
// buffer is full are disconnected rather than allowed to stall the room.
func (h *Hub) broadcast(hobbyID uint, event Event) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[hobbyID]))
	for c := range h.rooms[hobbyID] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		if !c.trySend(event) {
			h.logger.Warn("dropping slow chat client", "user_id", c.userID, "hobby_id", hobbyID)
			c.close()
		}
	}
}
