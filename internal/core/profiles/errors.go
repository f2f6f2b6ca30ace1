package profiles

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound is returned when a profile lookup finds no matching record
	ErrProfileNotFound = errors.New("profile not found")

	// ErrPenNameTaken is returned when the requested pen name belongs to another profile
	ErrPenNameTaken = errors.New("pen name already taken")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")
)

// InvalidPenNameError carries the reason a pen name failed validation
type InvalidPenNameError struct {
	PenName string
	Reason  string
}

func (e *InvalidPenNameError) Error() string {
	return fmt.Sprintf("invalid pen name %q: %s", e.PenName, e.Reason)
}

// InvalidEmailError is returned when an email address fails format validation
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email address: %q", e.Email)
}
