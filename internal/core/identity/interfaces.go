package identity

import (
	"context"

	"Penwall/internal/core/profiles"
)

// SignUpRequest is the input for account creation.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	PenName  string `json:"penName"`
}

// Service is the identity provider consumed by the rest of the system: it
// issues accounts and authenticates credentials. Session issuance and the
// current-actor lookup live in SessionManager, which is HTTP-scoped.
type Service interface {
	// SignUp creates a profile with a hashed password. Duplicate pen names
	// and emails surface as the profiles package's sentinel errors.
	SignUp(ctx context.Context, req SignUpRequest) (*profiles.Profile, error)

	// SignInWithPassword verifies credentials and returns the profile.
	// Returns ErrInvalidCredentials on any mismatch.
	SignInWithPassword(ctx context.Context, email, password string) (*profiles.Profile, error)
}
