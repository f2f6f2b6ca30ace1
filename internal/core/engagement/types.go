package engagement

import (
	"time"
)

// Like is the edge record behind a post like.
// Unique per (user, post); created and destroyed only via ToggleLike.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
}

// Follow is the edge record behind a follow relationship.
// Unique per (follower, following); self-follows are rejected before mutation.
type Follow struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ID          string    `json:"id" db:"id"`
	FollowerID  string    `json:"followerId" db:"follower_id"`
	FollowingID string    `json:"followingId" db:"following_id"`
}

// Report statuses. New reports always start as pending; the transitions to
// reviewed/dismissed belong to moderation, outside the ledger.
const (
	ReportStatusPending   = "pending"
	ReportStatusReviewed  = "reviewed"
	ReportStatusDismissed = "dismissed"
)

// Report reason categories, matching the fixed set offered by the client.
const (
	ReasonSpam          = "spam"
	ReasonHarassment    = "harassment"
	ReasonHateSpeech    = "hate_speech"
	ReasonViolence      = "violence"
	ReasonSexualContent = "sexual_content"
	ReasonCopyright     = "copyright"
	ReasonOther         = "other"
)

// validReasons is the whitelist checked by SubmitReport.
var validReasons = map[string]bool{
	ReasonSpam:          true,
	ReasonHarassment:    true,
	ReasonHateSpeech:    true,
	ReasonViolence:      true,
	ReasonSexualContent: true,
	ReasonCopyright:     true,
	ReasonOther:         true,
}

// ValidReason reports whether reason is one of the fixed report categories.
func ValidReason(reason string) bool {
	return validReasons[reason]
}

// Report is the edge record behind a post report.
// Unique per (reporter, post): reports are creatable once, never toggleable.
type Report struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ID         string    `json:"id" db:"id"`
	ReporterID string    `json:"reporterId" db:"reporter_id"`
	PostID     string    `json:"postId" db:"post_id"`
	Reason     string    `json:"reason" db:"reason"`
	Status     string    `json:"status" db:"status"`
}

// ToggleLikeResult reports the state after a like toggle.
type ToggleLikeResult struct {
	PostID string `json:"postId"`
	Liked  bool   `json:"liked"`
}

// ToggleFollowResult reports the state after a follow toggle.
type ToggleFollowResult struct {
	TargetID  string `json:"targetId"`
	Following bool   `json:"following"`
}
