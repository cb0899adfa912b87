// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"fmt"
)

// Sex is the biological sex used by the BMR regression.
type Sex string

// Recognised sexes.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex validates and normalises a sex string.
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case Male, Female:
		return Sex(s), nil
	}
	return "", fmt.Errorf("unknown sex %q", s)
}

// ActivityLevel describes habitual physical activity, used to scale BMR.
type ActivityLevel string

// Recognised activity levels.
const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly active"
	ModeratelyActive ActivityLevel = "moderately active"
	VeryActive       ActivityLevel = "very active"
	ExtremelyActive  ActivityLevel = "extremely active"
)

// ParseActivityLevel validates and normalises an activity level string.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch ActivityLevel(s) {
	case Sedentary, LightlyActive, ModeratelyActive, VeryActive, ExtremelyActive:
		return ActivityLevel(s), nil
	}
	return "", fmt.Errorf("unknown activity level %q", s)
}

// Profile holds the per-user attributes the caloric needs estimate depends
// on. Height is stored in inches and weights everywhere in the system are
// pounds.
type Profile struct {
	UserID        int64         `json:"userId"`
	Sex           Sex           `json:"sex"`
	Age           int           `json:"age"`
	HeightInches  float64       `json:"heightInches"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// ProfileRepository is the port for profile persistence.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	SaveProfile(ctx context.Context, p Profile) error
}
