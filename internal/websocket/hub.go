// Package websocket pushes sync and planning events to connected dashboard
// clients.
package websocket

import (
	"context"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is one broadcastable state change.
type Event struct {
	Type      string `json:"type"` // "import" or "planning"
	Source    string `json:"source,omitempty"`
	RowsAdded int    `json:"rows_added,omitempty"`
	Year      int    `json:"year,omitempty"`
	Entries   int    `json:"entries,omitempty"`
}

type Hub struct {
	clients    map[*websocket.Conn]struct{}
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	events     chan Event
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]struct{}),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		events:     make(chan Event, 16),
		logger:     logger,
	}
}

// Run owns the client set; it must be the only goroutine touching it.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for conn := range h.clients {
				conn.Close()
			}
			return
		case conn := <-h.register:
			h.clients[conn] = struct{}{}
		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
		case ev := <-h.events:
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					h.logger.Warn("websocket write failed", zap.Error(err))
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// Register hands a new connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister detaches and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Broadcast queues an event for every connected client. Drops the event when
// the queue is full rather than blocking a batch run.
func (h *Hub) Broadcast(ev Event) {
	select {
	case h.events <- ev:
	default:
		h.logger.Warn("event queue full, dropping event", zap.String("type", ev.Type))
	}
}
