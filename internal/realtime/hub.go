// Package realtime fans coordinator events out to every connected websocket
// client, including the one that caused the mutation. Delivery is best-effort
// and at-most-once: disconnected or slow clients are dropped and rely on
// their own polling/staleness fallback, never on replay.
package realtime

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"spendaily/internal/events"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// sessionSendBuffer bounds the per-client outbound queue; a client that falls
// this far behind is disconnected.
const sessionSendBuffer = 32

type session struct {
	conn *websocket.Conn
	send chan []byte
}

func (s *session) writeLoop() {
	for msg := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = s.conn.WriteMessage(websocket.CloseMessage, nil)
}

// Hub owns the connected-client set. It is an explicitly constructed,
// injectable instance: subscribe it to the event bus and run it alongside the
// server. The run loop is the single owner of the session map, so no lock is
// needed around it.
type Hub struct {
	logger     *zap.Logger
	register   chan *session
	unregister chan *session
	broadcast  chan []byte
	sessions   map[*session]struct{}
	clients    atomic.Int64
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *session),
		unregister: make(chan *session),
		broadcast:  make(chan []byte, 256),
		sessions:   make(map[*session]struct{}),
	}
}

// Run processes registrations and broadcasts until ctx is cancelled.
// Broadcasts drain in FIFO order, which preserves per-entity persistence
// order: publishers enqueue only after their write has committed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case s := <-h.register:
			h.sessions[s] = struct{}{}
			h.clients.Store(int64(len(h.sessions)))
			h.logger.Debug("Websocket client connected", zap.Int("clients", len(h.sessions)))

		case s := <-h.unregister:
			h.drop(s)

		case msg := <-h.broadcast:
			for s := range h.sessions {
				select {
				case s.send <- msg:
				default:
					h.logger.Warn("Dropping slow websocket client")
					h.drop(s)
				}
			}

		case <-ctx.Done():
			for s := range h.sessions {
				h.drop(s)
			}
			return
		}
	}
}

func (h *Hub) drop(s *session) {
	if _, ok := h.sessions[s]; !ok {
		return
	}
	delete(h.sessions, s)
	close(s.send)
	h.clients.Store(int64(len(h.sessions)))
	h.logger.Debug("Websocket client disconnected", zap.Int("clients", len(h.sessions)))
}

// Broadcast enqueues an event for delivery to all clients. Intended as a bus
// subscriber; it never blocks the publishing request, shedding load instead.
func (h *Hub) Broadcast(e events.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		h.logger.Error("Failed to encode event", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("Broadcast queue full, dropping event", zap.String("type", string(e.Type)))
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.clients.Load())
}

// UpgradeRequired rejects plain HTTP requests on the websocket route.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler returns the websocket endpoint. Each connection immediately
// receives a connect acknowledgment, then mutation events as they happen.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		s := &session{
			conn: conn,
			send: make(chan []byte, sessionSendBuffer),
		}

		ack, err := json.Marshal(events.Event{
			Type:    events.Connect,
			Message: "websocket connection established",
		})
		if err == nil {
			s.send <- ack
		}

		h.register <- s
		go s.writeLoop()

		// Inbound frames are not part of the protocol; the read loop only
		// detects disconnection.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		h.unregister <- s
	})
}
