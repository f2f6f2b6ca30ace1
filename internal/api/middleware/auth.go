package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"Penwall/internal/core/identity"
)

// Context keys for storing request identity
type contextKey string

const UserIDKey contextKey = "user_id"

// SessionAuthMiddleware resolves the cookie session into a request-scoped
// actor id. The actor is always an explicit context value threaded into
// handlers, never a hidden global.
type SessionAuthMiddleware struct {
	sessions *identity.SessionManager
}

// NewSessionAuthMiddleware creates a new session auth middleware
func NewSessionAuthMiddleware(sessions *identity.SessionManager) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{sessions: sessions}
}

// RequireAuth rejects unauthenticated requests with 401 and injects the
// actor id into the context otherwise.
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.sessions.CurrentUserID(r)
		if userID == "" {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth injects the actor id when a valid session is present and
// passes the request through untouched otherwise. Read paths use this to
// annotate viewer state without requiring sign-in.
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := m.sessions.CurrentUserID(r); userID != "" {
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID returns the authenticated actor id from the request context,
// or "" when the request is anonymous.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error: %v", err)
	}
}
