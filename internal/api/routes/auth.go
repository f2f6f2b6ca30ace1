package routes

import (
	"github.com/go-chi/chi/v5"

	"Penwall/internal/api/handlers/auth"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/identity"
	"Penwall/internal/core/profiles"
)

// RegisterAuthRoutes registers the identity endpoints on the router
func RegisterAuthRoutes(
	r chi.Router,
	identityService identity.Service,
	profileService profiles.Service,
	sessions *identity.SessionManager,
	authMiddleware *middleware.SessionAuthMiddleware,
) {
	handler := auth.NewHandler(identityService, profileService, sessions)

	r.Post("/api/auth/signup", handler.HandleSignup)
	r.Post("/api/auth/login", handler.HandleLogin)
	r.Post("/api/auth/logout", handler.HandleLogout)
	r.With(authMiddleware.RequireAuth).Get("/api/auth/me", handler.HandleMe)
}
