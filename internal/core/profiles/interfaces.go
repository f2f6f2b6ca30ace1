package profiles

import "context"

// Repository defines the data access interface for profiles
type Repository interface {
	Create(ctx context.Context, profile *Profile) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByPenName(ctx context.Context, penName string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)

	// GetDashboardStats aggregates posts_count plus the sum of likes_count
	// across the profile's posts in a single query.
	GetDashboardStats(ctx context.Context, id string) (*DashboardStats, error)

	// ListIDs returns all profile ids. Used by the counter reconciliation
	// sweep, not by request paths.
	ListIDs(ctx context.Context) ([]string, error)
}

// Service defines the business logic interface for profiles
type Service interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*Profile, error)
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
	GetProfileByPenName(ctx context.Context, penName string) (*Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
	GetDashboardStats(ctx context.Context, id string) (*DashboardStats, error)
}
