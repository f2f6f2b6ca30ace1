package profiles

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Pen name validation: alphanumeric plus hyphens/underscores, must start and
// end with an alphanumeric character.
var penNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9_-]*[a-zA-Z0-9])?$`)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPenNameLength = 3
	maxPenNameLength = 30
)

type profileService struct {
	repo Repository
}

// NewProfileService creates a new profile service
func NewProfileService(repo Repository) Service {
	return &profileService{repo: repo}
}

// CreateProfile validates and creates a new profile.
// Called by the identity service at signup; the repository's unique
// constraints are the final arbiter for pen name and email collisions.
func (s *profileService) CreateProfile(ctx context.Context, req CreateProfileRequest) (*Profile, error) {
	req.PenName = strings.TrimSpace(req.PenName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := validatePenName(req.PenName); err != nil {
		return nil, err
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, &InvalidEmailError{Email: req.Email}
	}
	if req.PasswordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	profile := &Profile{
		PenName:      req.PenName,
		Email:        req.Email,
		PasswordHash: req.PasswordHash,
	}

	return s.repo.Create(ctx, profile)
}

func (s *profileService) GetProfileByID(ctx context.Context, id string) (*Profile, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *profileService) GetProfileByPenName(ctx context.Context, penName string) (*Profile, error) {
	penName = strings.TrimSpace(penName)
	if penName == "" {
		return nil, fmt.Errorf("pen name is required")
	}
	return s.repo.GetByPenName(ctx, penName)
}

func (s *profileService) GetProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *profileService) GetDashboardStats(ctx context.Context, id string) (*DashboardStats, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.repo.GetDashboardStats(ctx, id)
}

func validatePenName(penName string) error {
	if len(penName) < minPenNameLength || len(penName) > maxPenNameLength {
		return &InvalidPenNameError{
			PenName: penName,
			Reason:  fmt.Sprintf("must be between %d and %d characters", minPenNameLength, maxPenNameLength),
		}
	}
	if !penNameRegex.MatchString(penName) {
		return &InvalidPenNameError{
			PenName: penName,
			Reason:  "must contain only letters, digits, hyphens, and underscores; must start and end with a letter or digit",
		}
	}
	return nil
}
