package socket

import "sync"

// Hub is the connection registry for the realtime relay: a mapping from room
// key (an account id) to the set of live connections in that room. Joins and
// disconnects mutate the map under the lock; broadcasts fan out to a snapshot.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Join registers the client in a room. A client belongs to at most one room;
// joining again moves it.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(c)

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]bool)
	}
	h.rooms[room][c] = true
	c.room = room
}

// Leave deregisters the client from its room, if any
func (h *Hub) Leave(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// Broadcast sends the payload to every connection currently in the room.
// Delivery is best effort: a client whose send buffer is full is skipped.
func (h *Hub) Broadcast(room string, payload []byte) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- payload:
		default:
			// Slow consumer; the write pump will notice the closed socket.
		}
	}
}

// RoomSize reports how many connections are registered in a room
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) removeLocked(c *Client) {
	if c.room == "" {
		return
	}
	if clients, ok := h.rooms[c.room]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, c.room)
		}
	}
	c.room = ""
}
