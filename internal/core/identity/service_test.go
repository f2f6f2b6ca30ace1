package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Penwall/internal/core/profiles"
)

type fakeProfileService struct {
	byEmail map[string]*profiles.Profile
	created *profiles.CreateProfileRequest
}

func (s *fakeProfileService) CreateProfile(ctx context.Context, req profiles.CreateProfileRequest) (*profiles.Profile, error) {
	s.created = &req
	profile := &profiles.Profile{
		ID:           "profile-1",
		PenName:      req.PenName,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
	}
	if s.byEmail == nil {
		s.byEmail = make(map[string]*profiles.Profile)
	}
	s.byEmail[req.Email] = profile
	return profile, nil
}

func (s *fakeProfileService) GetProfileByID(ctx context.Context, id string) (*profiles.Profile, error) {
	return nil, profiles.ErrProfileNotFound
}

func (s *fakeProfileService) GetProfileByPenName(ctx context.Context, penName string) (*profiles.Profile, error) {
	return nil, profiles.ErrProfileNotFound
}

func (s *fakeProfileService) GetProfileByEmail(ctx context.Context, email string) (*profiles.Profile, error) {
	p, ok := s.byEmail[email]
	if !ok {
		return nil, profiles.ErrProfileNotFound
	}
	return p, nil
}

func (s *fakeProfileService) GetDashboardStats(ctx context.Context, id string) (*profiles.DashboardStats, error) {
	return &profiles.DashboardStats{}, nil
}

func TestSignUpThenSignIn(t *testing.T) {
	profileService := &fakeProfileService{}
	service := NewIdentityService(profileService, NewArgon2Hasher(fastParams))
	ctx := context.Background()

	profile, err := service.SignUp(ctx, SignUpRequest{
		Email:    "writer@example.com",
		Password: "long enough password",
		PenName:  "quill",
	})
	require.NoError(t, err)
	assert.Equal(t, "quill", profile.PenName)

	// The repo never sees the raw password
	require.NotNil(t, profileService.created)
	assert.NotEqual(t, "long enough password", profileService.created.PasswordHash)
	assert.NotEmpty(t, profileService.created.PasswordHash)

	signedIn, err := service.SignInWithPassword(ctx, "writer@example.com", "long enough password")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, signedIn.ID)
}

func TestSignUp_RejectsWeakPassword(t *testing.T) {
	service := NewIdentityService(&fakeProfileService{}, NewArgon2Hasher(fastParams))

	_, err := service.SignUp(context.Background(), SignUpRequest{
		Email:    "writer@example.com",
		Password: "short",
		PenName:  "quill",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSignIn_WrongPassword(t *testing.T) {
	profileService := &fakeProfileService{}
	service := NewIdentityService(profileService, NewArgon2Hasher(fastParams))
	ctx := context.Background()

	_, err := service.SignUp(ctx, SignUpRequest{
		Email:    "writer@example.com",
		Password: "long enough password",
		PenName:  "quill",
	})
	require.NoError(t, err)

	_, err = service.SignInWithPassword(ctx, "writer@example.com", "not the password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_UnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	service := NewIdentityService(&fakeProfileService{}, NewArgon2Hasher(fastParams))

	_, err := service.SignInWithPassword(context.Background(), "nobody@example.com", "whatever password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_NormalizesEmail(t *testing.T) {
	profileService := &fakeProfileService{}
	service := NewIdentityService(profileService, NewArgon2Hasher(fastParams))
	ctx := context.Background()

	_, err := service.SignUp(ctx, SignUpRequest{
		Email:    "writer@example.com",
		Password: "long enough password",
		PenName:  "quill",
	})
	require.NoError(t, err)

	signedIn, err := service.SignInWithPassword(ctx, "  Writer@Example.COM ", "long enough password")
	require.NoError(t, err)
	assert.Equal(t, "writer@example.com", signedIn.Email)
}

func TestSignIn_EmptyCredentials(t *testing.T) {
	service := NewIdentityService(&fakeProfileService{}, NewArgon2Hasher(fastParams))

	_, err := service.SignInWithPassword(context.Background(), "", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.SignInWithPassword(context.Background(), "writer@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
