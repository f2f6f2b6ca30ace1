package posts

import (
	"time"
)

// MaxContentLength is the upper bound on post content, counted in runes.
const MaxContentLength = 2000

// Post represents a wall post.
// likes_count and reports_count are denormalized mirrors of the likes and
// reports edge tables; the engagement ledger is their only writer.
type Post struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	Content      string    `json:"content" db:"content"`
	LikesCount   int       `json:"likesCount" db:"likes_count"`
	ReportsCount int       `json:"reportsCount" db:"reports_count"`
	IsHidden     bool      `json:"isHidden" db:"is_hidden"`
}
