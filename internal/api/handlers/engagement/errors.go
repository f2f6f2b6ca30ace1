package engagement

import (
	"errors"
	"log"
	"net/http"

	"Penwall/internal/api/handlers"
	coreengagement "Penwall/internal/core/engagement"
	"Penwall/internal/core/posts"
	"Penwall/internal/core/profiles"
)

// handleServiceError converts ledger errors to HTTP responses following the
// engine's error taxonomy: ValidationError, DuplicateAction, NotFound,
// InvalidOperation, and everything else as an internal (transient) failure.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *coreengagement.ValidationError

	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Post not found")
	case errors.Is(err, profiles.ErrProfileNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Profile not found")
	case errors.Is(err, coreengagement.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidOperation", "Cannot follow your own profile")
	case errors.Is(err, coreengagement.ErrDuplicateReport):
		handlers.WriteError(w, http.StatusConflict, "DuplicateAction", "You have already reported this post")
	case errors.Is(err, coreengagement.ErrDuplicateEdge):
		handlers.WriteError(w, http.StatusConflict, "DuplicateAction", "Action already recorded")
	case errors.As(err, &validationErr):
		handlers.WriteError(w, http.StatusBadRequest, "ValidationError", err.Error())
	default:
		log.Printf("Engagement handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
