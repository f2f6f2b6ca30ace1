package routes

import (
	"github.com/go-chi/chi/v5"

	profileHandlers "Penwall/internal/api/handlers/profile"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/profiles"
)

// RegisterProfileRoutes registers the dashboard endpoints
func RegisterProfileRoutes(r chi.Router, service profiles.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	handler := profileHandlers.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/api/dashboard/stats", handler.HandleDashboardStats)
}
