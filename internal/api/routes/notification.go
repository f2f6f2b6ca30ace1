package routes

import (
	"github.com/go-chi/chi/v5"

	notificationHandlers "Penwall/internal/api/handlers/notification"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/notifications"
)

// RegisterNotificationRoutes registers the notification endpoints
func RegisterNotificationRoutes(r chi.Router, service notifications.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	handler := notificationHandlers.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/api/notifications", handler.HandleList)
	r.With(authMiddleware.RequireAuth).Post("/api/notifications/read", handler.HandleMarkAllRead)
}
