package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// counterColumns whitelists the (table, column) pairs Increment may touch.
// The whitelist keeps the dynamic SQL below injection-safe and documents the
// full set of denormalized counters in one place.
var counterColumns = map[string]bool{
	"posts.likes_count":        true,
	"posts.reports_count":      true,
	"profiles.followers_count": true,
	"profiles.following_count": true,
	"profiles.posts_count":     true,
}

// Execer is satisfied by *sql.DB and *sql.Tx. Counter updates issued inside
// a ledger transaction pass the transaction so the edge write and the
// counter update commit or roll back together.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// IncrementCounter applies an atomic store-level add to a whitelisted
// denormalized counter. This is the only sanctioned counter mutation path:
// a read-current-then-write round trip in application code loses updates
// under concurrent toggles on the same entity.
func IncrementCounter(ctx context.Context, db Execer, table, column, id string, delta int) error {
	key := table + "." + column
	if !counterColumns[key] {
		return fmt.Errorf("counter %s is not a sanctioned counter column", key)
	}

	// table and column come from the whitelist above, never from input
	query := fmt.Sprintf(
		`UPDATE %s SET %s = %s + $1, updated_at = NOW() WHERE id = $2`,
		table, column, column,
	)

	result, err := db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", key, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check increment result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("counter target %s id=%s not found", table, id)
	}

	return nil
}

// ReconcilePost recomputes a post's counters from edge cardinality and
// corrects drift. Returns true when a correction was applied. This is the
// safety net for partial-write failure modes outside the ledger's
// transactions (out-of-band writes, crash recovery).
func ReconcilePost(ctx context.Context, db *sql.DB, postID string) (bool, error) {
	query := `
		UPDATE posts p
		SET likes_count   = (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
		    reports_count = (SELECT COUNT(*) FROM reports r WHERE r.post_id = p.id),
		    updated_at    = NOW()
		WHERE p.id = $1
		  AND (p.likes_count   <> (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id)
		    OR p.reports_count <> (SELECT COUNT(*) FROM reports r WHERE r.post_id = p.id))
	`

	result, err := db.ExecContext(ctx, query, postID)
	if err != nil {
		return false, fmt.Errorf("failed to reconcile post %s: %w", postID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check reconcile result: %w", err)
	}

	return rows > 0, nil
}

// ReconcileProfile recomputes a profile's counters from edge cardinality.
// Returns true when a correction was applied.
func ReconcileProfile(ctx context.Context, db *sql.DB, profileID string) (bool, error) {
	query := `
		UPDATE profiles pr
		SET followers_count = (SELECT COUNT(*) FROM follows f WHERE f.following_id = pr.id),
		    following_count = (SELECT COUNT(*) FROM follows f WHERE f.follower_id  = pr.id),
		    posts_count     = (SELECT COUNT(*) FROM posts p WHERE p.user_id = pr.id),
		    updated_at      = NOW()
		WHERE pr.id = $1
		  AND (pr.followers_count <> (SELECT COUNT(*) FROM follows f WHERE f.following_id = pr.id)
		    OR pr.following_count <> (SELECT COUNT(*) FROM follows f WHERE f.follower_id  = pr.id)
		    OR pr.posts_count     <> (SELECT COUNT(*) FROM posts p WHERE p.user_id = pr.id))
	`

	result, err := db.ExecContext(ctx, query, profileID)
	if err != nil {
		return false, fmt.Errorf("failed to reconcile profile %s: %w", profileID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check reconcile result: %w", err)
	}

	return rows > 0, nil
}
