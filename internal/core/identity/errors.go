package identity

import "errors"

var (
	// ErrInvalidCredentials is returned for a wrong email/password pair.
	// Deliberately indistinguishable between unknown email and bad password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when the password fails the minimum policy
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrNotAuthenticated indicates no signed-in actor on the request
	ErrNotAuthenticated = errors.New("not authenticated")
)
