package services

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	EventMetrics        = "metrics.sample"
	EventMediaGenerated = "media.generated"
	EventMediaDiscarded = "media.discarded"
)

// Event is a single push message on the events socket.
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	At        time.Time   `json:"at"`
	AdminOnly bool        `json:"-"`
}

// EventHub fans events out to connected sockets. Admin-only events are
// skipped for regular connections.
type EventHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan Event
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan Event, 16),
	}
}

func (h *EventHub) Run(ctx context.Context) {
	for {
		select {
		case event := <-h.ch:
			h.mu.Lock()
			for conn, isAdmin := range h.clients {
				if event.AdminOnly && !isAdmin {
					continue
				}
				_ = conn.WriteJSON(event)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

// Broadcast never blocks; events are dropped when the buffer is full.
func (h *EventHub) Broadcast(event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	select {
	case h.ch <- event:
	default:
	}
}

func (h *EventHub) Add(conn *websocket.Conn, isAdmin bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = isAdmin
}

func (h *EventHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}
