package engagement

import (
	"context"

	"Penwall/internal/core/posts"
)

// Service is the engagement ledger: the sole mutation path for engagement
// edges and the denormalized counters they back.
type Service interface {
	// ToggleLike inserts the (actor, post) like edge if absent, deletes it if
	// present, and adjusts likes_count in the same transaction. Self-inverse:
	// two successive calls restore the prior state. Returns
	// posts.ErrPostNotFound if the post is missing or hidden.
	ToggleLike(ctx context.Context, actorID, postID string) (*ToggleLikeResult, error)

	// ToggleFollow is the symmetric toggle over the follow edge, adjusting
	// followers_count on the target and following_count on the actor.
	// Returns ErrSelfFollow when actorID == targetID.
	ToggleFollow(ctx context.Context, actorID, targetID string) (*ToggleFollowResult, error)

	// SubmitReport inserts a pending report and increments reports_count.
	// Returns ErrDuplicateReport if this reporter already reported the post.
	SubmitReport(ctx context.Context, actorID, postID, reason string) (*Report, error)

	// CreatePost inserts a post and increments the actor's posts_count.
	CreatePost(ctx context.Context, actorID, content string) (*posts.Post, error)
}

// Repository is the transactional store interface behind the ledger. Each
// method spans the edge write and its counter update in one transaction, so a
// partial write is never durable. The store's unique constraints are the
// final arbiter for races between concurrent toggles on the same edge key.
type Repository interface {
	// ToggleLike returns the resulting edge state: true if the edge was
	// inserted, false if it was deleted. Implementations must use a
	// conditional insert (constraint-violation fallback to the delete path)
	// rather than read-then-write.
	ToggleLike(ctx context.Context, actorID, postID string) (liked bool, err error)

	// ToggleFollow mirrors ToggleLike over the follow edge.
	ToggleFollow(ctx context.Context, followerID, followingID string) (following bool, err error)

	// CreateReport inserts the report edge and increments reports_count.
	// Returns ErrDuplicateReport on the (reporter, post) unique constraint,
	// leaving the counter unchanged.
	CreateReport(ctx context.Context, report *Report) error

	// CreatePost inserts the post row and increments posts_count.
	CreatePost(ctx context.Context, post *posts.Post) error
}

// Dispatcher is the slice of the notification service the ledger needs.
// Dispatch failures are logged, never propagated: notifications are derived
// data, not part of the mutation's invariant.
type Dispatcher interface {
	Notify(ctx context.Context, recipientID, kind, content string) error
}
