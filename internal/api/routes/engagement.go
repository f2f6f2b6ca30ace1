package routes

import (
	"github.com/go-chi/chi/v5"

	engagementHandlers "Penwall/internal/api/handlers/engagement"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/engagement"
)

// RegisterEngagementRoutes registers the ledger's mutation endpoints.
// Every mutation requires an authenticated actor.
func RegisterEngagementRoutes(r chi.Router, service engagement.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	handler := engagementHandlers.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", handler.HandleCreatePost)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/like", handler.HandleToggleLike)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{postID}/report", handler.HandleSubmitReport)
	r.With(authMiddleware.RequireAuth).Post("/api/profiles/{profileID}/follow", handler.HandleToggleFollow)
}
