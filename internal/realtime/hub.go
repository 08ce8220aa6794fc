// Package realtime pushes pipeline events to open admin dashboards so a
// card moved by one operator shows up on everyone else's board.
package realtime

import (
	"sync"
	"time"
)

// Event is one board update. Type is "lead.captured" or
// "lead.status_changed"; Lead carries the fresh server state.
type Event struct {
	Type string    `json:"type"`
	Lead any       `json:"lead,omitempty"`
	At   time.Time `json:"at"`
}

func NewEvent(eventType string, lead any) Event {
	return Event{Type: eventType, Lead: lead, At: time.Now()}
}

type Hub struct {
	mu    sync.RWMutex
	conns map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*Conn]struct{})}
}

func (h *Hub) Register(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) Unregister(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	_ = conn.Close()
}

// Broadcast fans one event out to every open dashboard. A connection
// that fails to take the write is dropped.
func (h *Hub) Broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.conns, conn)
			_ = conn.Close()
		}
	}
}

func (h *Hub) ConnCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
