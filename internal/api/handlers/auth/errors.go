package auth

import (
	"errors"
	"log"
	"net/http"

	"Penwall/internal/api/handlers"
	"Penwall/internal/core/identity"
	"Penwall/internal/core/profiles"
)

// handleServiceError converts identity/profile errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var invalidPenName *profiles.InvalidPenNameError
	var invalidEmail *profiles.InvalidEmailError

	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case errors.Is(err, identity.ErrWeakPassword):
		handlers.WriteError(w, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.Is(err, profiles.ErrPenNameTaken):
		handlers.WriteError(w, http.StatusConflict, "DuplicateAction", "Pen name already taken")
	case errors.Is(err, profiles.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "DuplicateAction", "Email already registered")
	case errors.Is(err, profiles.ErrProfileNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Profile not found")
	case errors.As(err, &invalidPenName), errors.As(err, &invalidEmail):
		handlers.WriteError(w, http.StatusBadRequest, "ValidationError", err.Error())
	default:
		log.Printf("Auth handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
