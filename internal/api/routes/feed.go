package routes

import (
	"github.com/go-chi/chi/v5"

	feedHandlers "Penwall/internal/api/handlers/feed"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/feeds"
)

// RegisterFeedRoutes registers the read-side feed endpoints. Auth is
// optional: signed-in viewers get like/follow annotations, anonymous
// viewers get the plain feed.
func RegisterFeedRoutes(r chi.Router, service feeds.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	handler := feedHandlers.NewHandler(service)

	r.With(authMiddleware.OptionalAuth).Get("/api/feed", handler.HandleListFeed)
	r.With(authMiddleware.OptionalAuth).Get("/api/profiles/{penName}/posts", handler.HandleListByProfile)
}
