package realtime

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	pongTimeout  = 60 * time.Second
	wsPing       = (pongTimeout * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin browser clients only; the cookie session is the auth
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler bridges hub subscriptions to connected clients. Each
// connection holds one subscription for its lifetime; closing the socket
// releases it.
type WebSocketHandler struct {
	hub *Hub
}

// NewWebSocketHandler creates a websocket handler over the hub
func NewWebSocketHandler(hub *Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// HandleFeedEvents upgrades the connection and streams invalidation events
// until the client disconnects.
// GET /api/realtime/feed
func (h *WebSocketHandler) HandleFeedEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	events, release := h.hub.Subscribe()
	defer release()

	// Reader goroutine: discards client frames, surfaces the close
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(wsPing)
	defer pingTicker.Stop()

	for {
		select {
		case <-done:
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Failed to write realtime event: %v", err)
				return
			}

		case <-pingTicker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
