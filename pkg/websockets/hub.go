package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// Hub holds websocket connections in process, for running the HTTP server without
// an API Gateway websocket API in front of it.
type Hub struct {
	Logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
}

type client struct {
	id        string
	auctionID string
	conn      *websocket.Conn
	send      chan []byte
}

// Make sure we conform to the interface
var _ Publisher = (*Hub)(nil)

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		Logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The identity middleware has already authenticated the request.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request and streams updates about auctionID until the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, auctionID string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.Logger.Warn("failed to upgrade connection", slog.Any("error", err))
		return
	}

	c := &client{
		id:        uuid.New().String(),
		auctionID: auctionID,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
	}
	h.register(c)
	go h.writePump(c)
	h.readPump(c)
}

// Publish queues a message for every local client watching its auction.
// A client whose buffer is full is dropped rather than allowed to block the others.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[message.AuctionId] {
		select {
		case c.send <- payload:
		default:
			h.Logger.Warn("dropping slow websocket client", slog.String("connection_id", c.id))
			h.removeLocked(c)
		}
	}
	return nil
}

// Subscribers returns how many clients are watching an auction.
func (h *Hub) Subscribers(auctionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[auctionID])
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.auctionID] == nil {
		h.clients[c.auctionID] = make(map[*client]struct{})
	}
	h.clients[c.auctionID][c] = struct{}{}
	h.Logger.Debug("client connected", slog.String("connection_id", c.id), slog.String("auction_id", c.auctionID))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked must be called with h.mu held. Closing send stops the write pump.
func (h *Hub) removeLocked(c *client) {
	watchers, ok := h.clients[c.auctionID]
	if !ok {
		return
	}
	if _, ok := watchers[c]; !ok {
		return
	}
	delete(watchers, c)
	if len(watchers) == 0 {
		delete(h.clients, c.auctionID)
	}
	close(c.send)
	h.Logger.Debug("client disconnected", slog.String("connection_id", c.id), slog.String("auction_id", c.auctionID))
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
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

// readPump discards client messages; reading is what notices the disconnect.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Logger.Warn("unexpected websocket close", slog.String("connection_id", c.id), slog.Any("error", err))
			}
			return
		}
	}
}
