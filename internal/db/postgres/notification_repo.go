package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Penwall/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

func (r *postgresNotificationRepo) Create(ctx context.Context, notification *notifications.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		notification.ID, notification.UserID, notification.Kind, notification.Content,
	).Scan(&notification.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}

func (r *postgresNotificationRepo) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*notifications.Notification, error) {
	query := `
		SELECT id, user_id, type, content, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*notifications.Notification
	for rows.Next() {
		var notification notifications.Notification
		err := rows.Scan(
			&notification.ID, &notification.UserID, &notification.Kind,
			&notification.Content, &notification.IsRead, &notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		result = append(result, &notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return result, nil
}

// MarkAllRead flips is_read on everything the recipient has.
// Idempotent: marking an already-read set affects zero rows and succeeds.
func (r *postgresNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE
	`

	if _, err := r.db.ExecContext(ctx, query, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func (r *postgresNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		recipientID,
	).Scan(&count)

	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}
