package engagement

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfFollow indicates an attempt to follow one's own profile
	ErrSelfFollow = errors.New("cannot follow your own profile")

	// ErrDuplicateReport indicates the reporter already reported this post.
	// Reports are creatable once per (reporter, post), never toggleable.
	ErrDuplicateReport = errors.New("post already reported")

	// ErrDuplicateEdge indicates a unique constraint fired on an edge insert
	// that the ledger did not resolve into a toggle. Surfaced verbatim, never
	// retried automatically: the caller must re-read edge state first, since
	// a blind retry of a self-inverse toggle can undo a committed attempt.
	ErrDuplicateEdge = errors.New("engagement edge already exists")
)

// ValidationError carries a field-level input violation (empty content,
// unknown report reason). Recovered locally by the caller; never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
