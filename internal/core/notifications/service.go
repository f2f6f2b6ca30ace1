package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type notificationService struct {
	repo Repository
}

// NewNotificationService creates a new notification dispatcher service
func NewNotificationService(repo Repository) Service {
	return &notificationService{repo: repo}
}

// Notify appends a notification row for the recipient.
func (s *notificationService) Notify(ctx context.Context, recipientID, kind, content string) error {
	if strings.TrimSpace(recipientID) == "" {
		return fmt.Errorf("recipient id is required")
	}
	if !ValidKind(kind) {
		return ErrInvalidKind
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("notification content is required")
	}

	notification := &Notification{
		ID:      uuid.NewString(),
		UserID:  recipientID,
		Kind:    kind,
		Content: content,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListForRecipient returns the recipient's notifications, newest first.
func (s *notificationService) ListForRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, fmt.Errorf("recipient id is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	return s.repo.ListByRecipient(ctx, recipientID, limit)
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID string) error {
	if strings.TrimSpace(recipientID) == "" {
		return fmt.Errorf("recipient id is required")
	}
	return s.repo.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) CountUnread(ctx context.Context, recipientID string) (int, error) {
	if strings.TrimSpace(recipientID) == "" {
		return 0, fmt.Errorf("recipient id is required")
	}
	return s.repo.CountUnread(ctx, recipientID)
}
