package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Penwall/internal/core/feeds"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// sortClauses maps sort policies to safe SQL ORDER BY clauses.
// The whitelist prevents SQL injection via dynamic ORDER BY construction,
// and it is where the most_liked tie-break is pinned down: likes_count is
// not unique, so recency then id make the ordering deterministic rather
// than leaving ties to the storage engine.
var sortClauses = map[string]string{
	feeds.SortNewest:    `p.created_at DESC, p.id DESC`,
	feeds.SortOldest:    `p.created_at ASC, p.id ASC`,
	feeds.SortMostLiked: `p.likes_count DESC, p.created_at DESC, p.id DESC`,
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feeds.Repository {
	return &postgresFeedRepo{db: db}
}

// ListFeed retrieves non-hidden posts with their author pen names.
// Single query with a JOIN; sorting happens in SQL under the whitelist.
func (r *postgresFeedRepo) ListFeed(ctx context.Context, sort string, limit int) ([]*feeds.FeedPost, error) {
	orderBy := sortClauses[sort]
	if orderBy == "" {
		orderBy = sortClauses[feeds.SortNewest]
	}

	query := fmt.Sprintf(`
		SELECT
			p.id, p.user_id, pr.pen_name,
			p.content, p.likes_count, p.reports_count,
			p.created_at, p.updated_at
		FROM posts p
		INNER JOIN profiles pr ON p.user_id = pr.id
		WHERE p.is_hidden = FALSE
		ORDER BY %s
		LIMIT $1
	`, orderBy)

	return r.queryFeedPosts(ctx, query, limit)
}

// ListByAuthor retrieves one author's non-hidden posts, newest first.
func (r *postgresFeedRepo) ListByAuthor(ctx context.Context, authorID string) ([]*feeds.FeedPost, error) {
	query := `
		SELECT
			p.id, p.user_id, pr.pen_name,
			p.content, p.likes_count, p.reports_count,
			p.created_at, p.updated_at
		FROM posts p
		INNER JOIN profiles pr ON p.user_id = pr.id
		WHERE p.user_id = $1 AND p.is_hidden = FALSE
		ORDER BY p.created_at DESC, p.id DESC
	`

	return r.queryFeedPosts(ctx, query, authorID)
}

func (r *postgresFeedRepo) queryFeedPosts(ctx context.Context, query string, args ...interface{}) ([]*feeds.FeedPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var feedPosts []*feeds.FeedPost
	for rows.Next() {
		var feedPost feeds.FeedPost
		err := rows.Scan(
			&feedPost.ID, &feedPost.UserID, &feedPost.AuthorPenName,
			&feedPost.Content, &feedPost.LikesCount, &feedPost.ReportsCount,
			&feedPost.CreatedAt, &feedPost.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed post: %w", err)
		}
		feedPosts = append(feedPosts, &feedPost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed posts: %w", err)
	}

	return feedPosts, nil
}
