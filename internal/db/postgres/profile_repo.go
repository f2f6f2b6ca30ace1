package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"Penwall/internal/core/profiles"
)

type postgresProfileRepo struct {
	db *sql.DB
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db *sql.DB) profiles.Repository {
	return &postgresProfileRepo{db: db}
}

const profileColumns = `
	id, pen_name, email, password_hash,
	followers_count, following_count, posts_count,
	created_at, updated_at
`

// Create inserts a new profile. The unique constraints on pen_name and email
// are the final arbiter for duplicate signups.
func (r *postgresProfileRepo) Create(ctx context.Context, profile *profiles.Profile) (*profiles.Profile, error) {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO profiles (id, pen_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		profile.ID, profile.PenName, profile.Email, profile.PasswordHash,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "profiles_pen_name_key") {
			return nil, profiles.ErrPenNameTaken
		}
		if isUniqueViolation(err, "profiles_email_key") {
			return nil, profiles.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return profile, nil
}

func (r *postgresProfileRepo) GetByID(ctx context.Context, id string) (*profiles.Profile, error) {
	query := `SELECT` + profileColumns + `FROM profiles WHERE id = $1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresProfileRepo) GetByPenName(ctx context.Context, penName string) (*profiles.Profile, error) {
	query := `SELECT` + profileColumns + `FROM profiles WHERE pen_name = $1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, penName))
}

func (r *postgresProfileRepo) GetByEmail(ctx context.Context, email string) (*profiles.Profile, error) {
	query := `SELECT` + profileColumns + `FROM profiles WHERE email = $1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, email))
}

// GetDashboardStats aggregates the profile's counters plus total likes
// received across its posts in one query.
func (r *postgresProfileRepo) GetDashboardStats(ctx context.Context, id string) (*profiles.DashboardStats, error) {
	query := `
		SELECT
			pr.posts_count,
			pr.followers_count,
			pr.following_count,
			COALESCE((SELECT SUM(p.likes_count) FROM posts p WHERE p.user_id = pr.id), 0) AS likes_received
		FROM profiles pr
		WHERE pr.id = $1
	`

	var stats profiles.DashboardStats
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stats.PostsCount, &stats.FollowersCount, &stats.FollowingCount, &stats.LikesReceived,
	)

	if err == sql.ErrNoRows {
		return nil, profiles.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}

// ListIDs returns every profile id, for the reconciliation sweep.
func (r *postgresProfileRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan profile id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile ids: %w", err)
	}

	return ids, nil
}

func (r *postgresProfileRepo) scanProfile(row *sql.Row) (*profiles.Profile, error) {
	var profile profiles.Profile

	err := row.Scan(
		&profile.ID, &profile.PenName, &profile.Email, &profile.PasswordHash,
		&profile.FollowersCount, &profile.FollowingCount, &profile.PostsCount,
		&profile.CreatedAt, &profile.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, profiles.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}
