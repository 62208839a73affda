// Package notify pushes change events to connected websocket clients.
// The contract is best-effort: after a successful mutation every
// subscriber receives a small "changed" frame telling it which table
// moved, and is expected to trigger a snapshot reload. Nothing is
// queued, retried or acknowledged; a client that cannot keep up is
// dropped and reconnects.
package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is the frame pushed to subscribers.
type Event struct {
	Event string `json:"event"` // always "changed"
	Table string `json:"table"` // campaign, campaign_member, crusade_force or unit
}

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks subscriber connections and fans events out to them.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]struct{})}
}

// Subscribe upgrades the request to a websocket and registers the
// connection. The read loop only exists to notice the peer closing.
func (h *Hub) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	zap.L().Info("change subscriber connected", zap.String("remote", conn.RemoteAddr().String()))

	go h.readLoop(conn)
}

// readLoop discards inbound frames and deregisters on error or close.
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast pushes a changed-table event to every subscriber. Slow or
// broken connections are dropped mid-iteration.
func (h *Hub) Broadcast(table string) {
	payload, err := json.Marshal(Event{Event: "changed", Table: table})
	if err != nil {
		zap.L().Error("marshal change event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Warn("dropping change subscriber", zap.Error(err))
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// drop closes and deregisters one connection.
func (h *Hub) drop(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// Close tears down every subscriber connection, used during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}
