package notifications

import "context"

// Repository defines the data access interface for notifications
type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}

// Service defines the business logic interface for the notification
// dispatcher. Notify is invoked only by the engagement ledger after a
// successful like or follow mutation whose actor is not the recipient.
type Service interface {
	Notify(ctx context.Context, recipientID, kind, content string) error
	ListForRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)

	// MarkAllRead flips is_read on all of the recipient's notifications.
	// Invoked when the recipient freshly views their notification list.
	MarkAllRead(ctx context.Context, recipientID string) error
	CountUnread(ctx context.Context, recipientID string) (int, error)
}
