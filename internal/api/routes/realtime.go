package routes

import (
	"github.com/go-chi/chi/v5"

	"Penwall/internal/realtime"
)

// RegisterRealtimeRoutes registers the websocket endpoint that streams
// coarse feed invalidation signals to clients.
func RegisterRealtimeRoutes(r chi.Router, hub *realtime.Hub) {
	handler := realtime.NewWebSocketHandler(hub)

	r.Get("/api/realtime/feed", handler.HandleFeedEvents)
}
