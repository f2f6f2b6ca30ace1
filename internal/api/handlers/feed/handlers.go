package feed

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Penwall/internal/api/handlers"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/feeds"
	"Penwall/internal/core/profiles"
)

// Handler serves the read-side feed endpoints. Both routes sit behind the
// optional-auth middleware: anonymous viewers get IsLiked=false everywhere.
type Handler struct {
	service feeds.Service
}

// NewHandler creates a new feed handler
func NewHandler(service feeds.Service) *Handler {
	return &Handler{service: service}
}

// HandleListFeed returns the wall feed.
// GET /api/feed?sort=newest|oldest|most_liked&limit=50
func (h *Handler) HandleListFeed(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	sort := r.URL.Query().Get("sort")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		limit = parsed
	}

	feedPosts, err := h.service.ListFeed(r.Context(), viewerID, sort, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if feedPosts == nil {
		feedPosts = []*feeds.FeedPost{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": feedPosts})
}

// HandleListByProfile returns one author's wall keyed by pen name.
// GET /api/profiles/{penName}/posts
func (h *Handler) HandleListByProfile(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r)
	penName := chi.URLParam(r, "penName")

	profileFeed, err := h.service.ListByProfile(r.Context(), penName, viewerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if profileFeed.Posts == nil {
		profileFeed.Posts = []*feeds.FeedPost{}
	}

	handlers.WriteJSON(w, http.StatusOK, profileFeed)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profiles.ErrProfileNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Profile not found")
	default:
		log.Printf("Feed handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
