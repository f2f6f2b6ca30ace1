package profile

import (
	"errors"
	"log"
	"net/http"

	"Penwall/internal/api/handlers"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/profiles"
)

// Handler serves the actor's own dashboard view.
type Handler struct {
	service profiles.Service
}

// NewHandler creates a new profile handler
func NewHandler(service profiles.Service) *Handler {
	return &Handler{service: service}
}

// HandleDashboardStats returns the actor's aggregate activity: own post
// count, followers/following, and total likes received across their posts.
// GET /api/dashboard/stats
func (h *Handler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)

	stats, err := h.service.GetDashboardStats(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			handlers.WriteError(w, http.StatusNotFound, "NotFound", "Profile not found")
			return
		}
		log.Printf("Dashboard stats error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, stats)
}
