package notification

import (
	"log"
	"net/http"

	"Penwall/internal/api/handlers"
	"Penwall/internal/api/middleware"
	"Penwall/internal/core/notifications"
)

// Handler serves the recipient-facing notification endpoints. All routes
// require authentication; a recipient only ever sees their own rows.
type Handler struct {
	service notifications.Service
}

// NewHandler creates a new notification handler
func NewHandler(service notifications.Service) *Handler {
	return &Handler{service: service}
}

// HandleList returns the actor's notifications, newest first, plus the
// unread count.
// GET /api/notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	recipientID := middleware.GetUserID(r)

	list, err := h.service.ListForRecipient(r.Context(), recipientID, 0)
	if err != nil {
		log.Printf("Notification list error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	unread, err := h.service.CountUnread(r.Context(), recipientID)
	if err != nil {
		log.Printf("Notification unread count error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	if list == nil {
		list = []*notifications.Notification{}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": list,
		"unreadCount":   unread,
	})
}

// HandleMarkAllRead flips is_read on all of the actor's notifications.
// Invoked when the notification list is freshly viewed.
// POST /api/notifications/read
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	recipientID := middleware.GetUserID(r)

	if err := h.service.MarkAllRead(r.Context(), recipientID); err != nil {
		log.Printf("Notification mark-read error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
