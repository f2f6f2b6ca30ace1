package profiles

import (
	"time"
)

// Profile represents an author identity on the wall.
// Counters are denormalized: they mirror the cardinality of the corresponding
// edge tables and are only ever written through the counter helper.
type Profile struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	ID             string    `json:"id" db:"id"`
	PenName        string    `json:"penName" db:"pen_name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	FollowersCount int       `json:"followersCount" db:"followers_count"`
	FollowingCount int       `json:"followingCount" db:"following_count"`
	PostsCount     int       `json:"postsCount" db:"posts_count"`
}

// CreateProfileRequest is the input for creating a profile at signup.
// PasswordHash is already computed by the identity service; repos never see
// raw passwords.
type CreateProfileRequest struct {
	PenName      string
	Email        string
	PasswordHash string
}

// DashboardStats aggregates a profile's own activity for the dashboard view.
type DashboardStats struct {
	PostsCount     int `json:"postsCount"`
	LikesReceived  int `json:"likesReceived"`
	FollowersCount int `json:"followersCount"`
	FollowingCount int `json:"followingCount"`
}
