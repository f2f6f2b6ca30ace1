package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"Penwall/internal/core/engagement"
	"Penwall/internal/core/posts"
)

// EngagementRepo is the transactional store behind the engagement ledger.
// Every mutation spans its edge write and counter update in one transaction,
// so a partial write is never durable. It also serves the feed assembler's
// batch like lookup and follow lookup (read side of the same edges).
type EngagementRepo struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL engagement repository
func NewEngagementRepository(db *sql.DB) *EngagementRepo {
	return &EngagementRepo{db: db}
}

// ToggleLike inserts or deletes the (actor, post) like edge and adjusts
// likes_count in the same transaction. The conditional insert makes the
// unique constraint the arbiter for racing toggles: a second writer that
// loses the insert race falls through to the delete path instead of
// double-counting.
func (r *EngagementRepo) ToggleLike(ctx context.Context, actorID, postID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	insertQuery := `
		INSERT INTO likes (id, user_id, post_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, post_id) DO NOTHING
		RETURNING id
	`

	var likeID string
	err = tx.QueryRowContext(ctx, insertQuery, uuid.NewString(), actorID, postID).Scan(&likeID)

	switch {
	case err == nil:
		// Edge inserted: count up
		if err := IncrementCounter(ctx, tx, "posts", "likes_count", postID, +1); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit like: %w", err)
		}
		return true, nil

	case err == sql.ErrNoRows:
		// Edge already present: toggle off
		result, err := tx.ExecContext(ctx,
			`DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, actorID, postID)
		if err != nil {
			return false, fmt.Errorf("failed to delete like: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("failed to check delete result: %w", err)
		}

		if rows == 0 {
			// A concurrent unlike removed the edge between our conflict and
			// our delete. Nothing changed on our side; commit empty.
			if err := tx.Commit(); err != nil {
				return false, fmt.Errorf("failed to commit like toggle: %w", err)
			}
			return false, nil
		}

		if err := IncrementCounter(ctx, tx, "posts", "likes_count", postID, -1); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit unlike: %w", err)
		}
		return false, nil

	default:
		return false, fmt.Errorf("failed to insert like: %w", err)
	}
}

// ToggleFollow mirrors ToggleLike over the follow edge, adjusting
// followers_count on the target and following_count on the actor.
func (r *EngagementRepo) ToggleFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	insertQuery := `
		INSERT INTO follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (follower_id, following_id) DO NOTHING
		RETURNING id
	`

	var followID string
	err = tx.QueryRowContext(ctx, insertQuery, uuid.NewString(), followerID, followingID).Scan(&followID)

	switch {
	case err == nil:
		if err := r.adjustFollowCounters(ctx, tx, followerID, followingID, +1); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit follow: %w", err)
		}
		return true, nil

	case err == sql.ErrNoRows:
		result, err := tx.ExecContext(ctx,
			`DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`, followerID, followingID)
		if err != nil {
			return false, fmt.Errorf("failed to delete follow: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("failed to check delete result: %w", err)
		}

		if rows == 0 {
			if err := tx.Commit(); err != nil {
				return false, fmt.Errorf("failed to commit follow toggle: %w", err)
			}
			return false, nil
		}

		if err := r.adjustFollowCounters(ctx, tx, followerID, followingID, -1); err != nil {
			return false, err
		}
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("failed to commit unfollow: %w", err)
		}
		return false, nil

	default:
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}
}

// CreateReport inserts the report edge and increments reports_count in one
// transaction. The (reporter, post) unique constraint rejects duplicates
// before any counter is touched.
func (r *EngagementRepo) CreateReport(ctx context.Context, report *engagement.Report) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		INSERT INTO reports (id, reporter_id, post_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	err = tx.QueryRowContext(ctx, query,
		report.ID, report.ReporterID, report.PostID, report.Reason, report.Status,
	).Scan(&report.CreatedAt)

	if err != nil {
		if isUniqueViolation(err, "reports_reporter_id_post_id_key") {
			return engagement.ErrDuplicateReport
		}
		return fmt.Errorf("failed to insert report: %w", err)
	}

	if err := IncrementCounter(ctx, tx, "posts", "reports_count", report.PostID, +1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}

	return nil
}

// CreatePost inserts the post row and increments the author's posts_count in
// one transaction.
func (r *EngagementRepo) CreatePost(ctx context.Context, post *posts.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollback(tx)

	query := `
		INSERT INTO posts (id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query, post.ID, post.UserID, post.Content).
		Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	if err := IncrementCounter(ctx, tx, "profiles", "posts_count", post.UserID, +1); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit post: %w", err)
	}

	return nil
}

// LikedPostIDs returns which of postIDs the viewer has liked, in one batch
// query. Missing posts are simply absent from the map.
func (r *EngagementRepo) LikedPostIDs(ctx context.Context, viewerID string, postIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	query := `
		SELECT post_id
		FROM likes
		WHERE user_id = $1 AND post_id = ANY($2)
	`

	rows, err := r.db.QueryContext(ctx, query, viewerID, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to batch-query likes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var postID string
		if err := rows.Scan(&postID); err != nil {
			return nil, fmt.Errorf("failed to scan liked post id: %w", err)
		}
		liked[postID] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liked post ids: %w", err)
	}

	return liked, nil
}

// IsFollowing reports whether follower currently follows following.
func (r *EngagementRepo) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2
		)
	`

	var following bool
	if err := r.db.QueryRowContext(ctx, query, followerID, followingID).Scan(&following); err != nil {
		return false, fmt.Errorf("failed to query follow state: %w", err)
	}

	return following, nil
}

// adjustFollowCounters moves both sides of the follow relationship by delta.
func (r *EngagementRepo) adjustFollowCounters(ctx context.Context, tx *sql.Tx, followerID, followingID string, delta int) error {
	if err := IncrementCounter(ctx, tx, "profiles", "followers_count", followingID, delta); err != nil {
		return err
	}
	return IncrementCounter(ctx, tx, "profiles", "following_count", followerID, delta)
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		log.Printf("Failed to rollback transaction: %v", err)
	}
}
