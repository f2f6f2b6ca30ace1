package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Penwall/internal/core/profiles"
)

const minPasswordLength = 8

type identityService struct {
	profileService profiles.Service
	hasher         *Argon2Hasher
}

// NewIdentityService creates a new identity service
func NewIdentityService(profileService profiles.Service, hasher *Argon2Hasher) Service {
	if hasher == nil {
		hasher = NewArgon2Hasher(nil)
	}
	return &identityService{
		profileService: profileService,
		hasher:         hasher,
	}
}

// SignUp hashes the password and creates the profile. Pen name and email
// validation, and duplicate detection, are the profile service's concern.
func (s *identityService) SignUp(ctx context.Context, req SignUpRequest) (*profiles.Profile, error) {
	if len(req.Password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.profileService.CreateProfile(ctx, profiles.CreateProfileRequest{
		PenName:      req.PenName,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
}

// SignInWithPassword verifies the email/password pair.
func (s *identityService) SignInWithPassword(ctx context.Context, email, password string) (*profiles.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileService.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	match, err := s.hasher.Verify(password, profile.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}
