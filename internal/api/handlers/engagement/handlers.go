package engagement

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Penwall/internal/api/handlers"
	"Penwall/internal/api/middleware"
	coreengagement "Penwall/internal/core/engagement"
)

// Handler serves the engagement ledger endpoints. Every route sits behind
// the auth middleware, so the actor id is always present in the context.
type Handler struct {
	service coreengagement.Service
}

// NewHandler creates a new engagement handler
func NewHandler(service coreengagement.Service) *Handler {
	return &Handler{service: service}
}

// HandleToggleLike toggles the actor's like on a post.
// POST /api/posts/{postID}/like
func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	postID := chi.URLParam(r, "postID")

	result, err := h.service.ToggleLike(r.Context(), actorID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleToggleFollow toggles the actor's follow on a profile.
// POST /api/profiles/{profileID}/follow
func (h *Handler) HandleToggleFollow(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	targetID := chi.URLParam(r, "profileID")

	result, err := h.service.ToggleFollow(r.Context(), actorID, targetID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleSubmitReport records a report against a post.
// POST /api/posts/{postID}/report
func (h *Handler) HandleSubmitReport(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)
	postID := chi.URLParam(r, "postID")

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.Reason == "" {
		handlers.WriteError(w, http.StatusBadRequest, "ValidationError", "reason is required")
		return
	}

	report, err := h.service.SubmitReport(r.Context(), actorID, postID, req.Reason)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, report)
}

// HandleCreatePost creates a post for the actor.
// POST /api/posts
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserID(r)

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	post, err := h.service.CreatePost(r.Context(), actorID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, post)
}
