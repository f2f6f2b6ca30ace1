package feeds

import (
	"time"
)

// Sort policies for the wall feed. The most_liked tie-break (recency, then
// id) is deliberate: raw ordering by a non-unique counter is unstable.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortMostLiked = "most_liked"
)

const (
	// DefaultLimit is applied when the caller passes no limit.
	DefaultLimit = 50
	// MaxLimit caps the result size regardless of the requested limit.
	MaxLimit = 100
)

// NormalizeSort maps unknown sort values to the default policy.
func NormalizeSort(sort string) string {
	switch sort {
	case SortNewest, SortOldest, SortMostLiked:
		return sort
	default:
		return SortNewest
	}
}

// NormalizeLimit clamps a requested limit into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// FeedPost is a viewer-annotated post view: the post row joined with its
// author's pen name, plus the viewer's like state. IsLiked reflects a literal
// edge lookup for the requesting viewer, never a cached guess; it is always
// false for anonymous viewers.
type FeedPost struct {
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	AuthorPenName string    `json:"authorPenName"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likesCount"`
	ReportsCount  int       `json:"reportsCount"`
	IsLiked       bool      `json:"isLiked"`
}

// ProfileView is the public slice of a profile shown on its wall page.
type ProfileView struct {
	CreatedAt      time.Time `json:"createdAt"`
	ID             string    `json:"id"`
	PenName        string    `json:"penName"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	PostsCount     int       `json:"postsCount"`
}

// ProfileFeed is one author's non-hidden posts plus the viewer's follow
// relationship to that author.
type ProfileFeed struct {
	Profile     *ProfileView `json:"profile"`
	Posts       []*FeedPost  `json:"posts"`
	IsFollowing bool         `json:"isFollowing"`
}
