package feeds

import "context"

// Repository defines the read-side data access interface for feeds.
// Implementations select only non-hidden posts and join the author pen name.
type Repository interface {
	// ListFeed returns up to limit non-hidden posts under the given sort
	// policy. sort must be one of the Sort* constants.
	ListFeed(ctx context.Context, sort string, limit int) ([]*FeedPost, error)

	// ListByAuthor returns the author's non-hidden posts, newest first.
	ListByAuthor(ctx context.Context, authorID string) ([]*FeedPost, error)
}

// LikeLookup answers which of a set of posts the viewer has liked, in one
// batch query.
type LikeLookup interface {
	LikedPostIDs(ctx context.Context, viewerID string, postIDs []string) (map[string]bool, error)
}

// FollowLookup answers whether follower currently follows following.
type FollowLookup interface {
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
}

// Service is the feed assembler: a pure read path, safe to call concurrently
// with any number of ledger mutations. Results may be momentarily stale
// relative to a just-committed mutation elsewhere, but each call is
// internally consistent.
type Service interface {
	// ListFeed returns the wall feed. viewerID may be empty for anonymous
	// viewers, in which case every post is annotated IsLiked=false.
	ListFeed(ctx context.Context, viewerID, sort string, limit int) ([]*FeedPost, error)

	// ListByProfile returns one author's wall keyed by pen name, with the
	// viewer's follow state when the viewer is present and distinct.
	ListByProfile(ctx context.Context, penName, viewerID string) (*ProfileFeed, error)
}
