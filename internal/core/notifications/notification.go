package notifications

import (
	"time"
)

// Notification kinds. Only engagement mutations produce notifications, so the
// set mirrors the ledger's newsworthy operations.
const (
	KindLike   = "like"
	KindFollow = "follow"
)

// ValidKind reports whether kind is a known notification kind.
func ValidKind(kind string) bool {
	return kind == KindLike || kind == KindFollow
}

// Notification is a rendered activity record for a recipient.
// Created only as a side effect of a successful like or follow whose actor
// differs from the recipient; mutated only to flip IsRead.
type Notification struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	Kind      string    `json:"type" db:"type"`
	Content   string    `json:"content" db:"content"`
	IsRead    bool      `json:"isRead" db:"is_read"`
}
