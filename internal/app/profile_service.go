package app

import (
	"context"
	"fmt"

	"calculator/internal/domain"
)

// ProfileService manages the user attributes the estimate depends on.
type ProfileService struct {
	profiles domain.ProfileRepository
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(profiles domain.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: no profile for user", ErrData)
	}
	return profile, nil
}

// Update replaces the mutable profile fields. Sex is fixed at registration.
func (s *ProfileService) Update(ctx context.Context, userID int64, age int, heightInches float64, activityLevel string) (*domain.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if age <= 0 {
		return nil, fmt.Errorf("%w: age must be > 0", ErrInvalidParameter)
	}
	if heightInches <= 0 {
		return nil, fmt.Errorf("%w: height must be > 0", ErrInvalidParameter)
	}
	level, err := domain.ParseActivityLevel(activityLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	profile.Age = age
	profile.HeightInches = heightInches
	profile.ActivityLevel = level
	if err := s.profiles.SaveProfile(ctx, *profile); err != nil {
		return nil, err
	}
	return profile, nil
}
