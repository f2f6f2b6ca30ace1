package auth

import (
	"encoding/json"
	"net/http"

	"Penwall/internal/api/handlers"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/identity"
	"Penwall/internal/core/profiles"
)

// Handler serves the identity endpoints: signup, login, logout, me.
type Handler struct {
	identityService identity.Service
	profileService  profiles.Service
	sessions        *identity.SessionManager
}

// NewHandler creates a new auth handler
func NewHandler(identityService identity.Service, profileService profiles.Service, sessions *identity.SessionManager) *Handler {
	return &Handler{
		identityService: identityService,
		profileService:  profileService,
		sessions:        sessions,
	}
}

// HandleSignup creates an account and signs the new actor in.
// POST /api/auth/signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req identity.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	profile, err := h.identityService.SignUp(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, profile.ID); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to establish session")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, profile)
}

// HandleLogin authenticates credentials and issues a session.
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	profile, err := h.identityService.SignInWithPassword(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, profile.ID); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to establish session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}

// HandleLogout expires the session. Always succeeds for signed-out callers.
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to clear session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"signedOut": true})
}

// HandleMe returns the signed-in actor's own profile.
// GET /api/auth/me
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	profile, err := h.profileService.GetProfileByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, profile)
}
