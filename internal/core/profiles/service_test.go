package profiles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileRepo struct {
	created *Profile
	byID    map[string]*Profile
}

func (r *stubProfileRepo) Create(ctx context.Context, profile *Profile) (*Profile, error) {
	r.created = profile
	return profile, nil
}

func (r *stubProfileRepo) GetByID(ctx context.Context, id string) (*Profile, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

func (r *stubProfileRepo) GetByPenName(ctx context.Context, penName string) (*Profile, error) {
	return nil, ErrProfileNotFound
}

func (r *stubProfileRepo) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	return nil, ErrProfileNotFound
}

func (r *stubProfileRepo) GetDashboardStats(ctx context.Context, id string) (*DashboardStats, error) {
	return &DashboardStats{PostsCount: 2, LikesReceived: 7}, nil
}

func (r *stubProfileRepo) ListIDs(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestCreateProfile_NormalizesInput(t *testing.T) {
	repo := &stubProfileRepo{}
	service := NewProfileService(repo)

	profile, err := service.CreateProfile(context.Background(), CreateProfileRequest{
		PenName:      "  quill-writer  ",
		Email:        "  Writer@Example.COM ",
		PasswordHash: "$argon2id$...",
	})
	require.NoError(t, err)

	assert.Equal(t, "quill-writer", profile.PenName)
	assert.Equal(t, "writer@example.com", profile.Email)
	assert.Same(t, profile, repo.created)
}

func TestCreateProfile_PenNameValidation(t *testing.T) {
	tests := []struct {
		name    string
		penName string
		valid   bool
	}{
		{"simple", "abc", true},
		{"with separators", "pen_name-42", true},
		{"max length", "a234567890123456789012345678zz", true},
		{"too short", "ab", false},
		{"too long", "a2345678901234567890123456789012", false},
		{"leading hyphen", "-abc", false},
		{"trailing underscore", "abc_", false},
		{"spaces", "pen name", false},
		{"unicode", "plumaé", false},
	}

	service := NewProfileService(&stubProfileRepo{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProfile(context.Background(), CreateProfileRequest{
				PenName:      tt.penName,
				Email:        "writer@example.com",
				PasswordHash: "hash",
			})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				var invalidErr *InvalidPenNameError
				assert.ErrorAs(t, err, &invalidErr)
			}
		})
	}
}

func TestCreateProfile_RejectsBadEmail(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	for _, email := range []string{"", "plain", "a@b", "a b@example.com", "@example.com"} {
		_, err := service.CreateProfile(context.Background(), CreateProfileRequest{
			PenName:      "quill",
			Email:        email,
			PasswordHash: "hash",
		})
		var invalidErr *InvalidEmailError
		assert.ErrorAs(t, err, &invalidErr, email)
	}
}

func TestCreateProfile_RequiresPasswordHash(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	_, err := service.CreateProfile(context.Background(), CreateProfileRequest{
		PenName: "quill",
		Email:   "writer@example.com",
	})
	assert.Error(t, err)
}

func TestGetProfileByID_RequiresID(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	_, err := service.GetProfileByID(context.Background(), "  ")
	assert.Error(t, err)
}

func TestGetDashboardStats(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	stats, err := service.GetDashboardStats(context.Background(), "profile-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.PostsCount)
	assert.Equal(t, 7, stats.LikesReceived)
}
