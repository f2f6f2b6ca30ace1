package posts

import "context"

// Repository defines the read-side data access interface for posts.
// All writes to posts (creation, counter updates) go through the engagement
// ledger so that edge and counter mutations share a transaction.
type Repository interface {
	// GetByID retrieves a post by id. Returns ErrPostNotFound if the post
	// does not exist. Hidden posts are returned; visibility filtering is a
	// caller concern (the ledger treats hidden as not found).
	GetByID(ctx context.Context, id string) (*Post, error)

	// ListIDs returns all post ids. Used by the counter reconciliation
	// sweep, not by request paths.
	ListIDs(ctx context.Context) ([]string, error)
}
