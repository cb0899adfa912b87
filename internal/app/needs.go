package app

import (
	"context"
	"fmt"
	"math"

	"calculator/internal/domain"
)

// CaloricNeeds is the result of a caloric needs estimate. All calorie values
// are kcal/day rounded to the nearest whole number.
type CaloricNeeds struct {
	BMR            int    `json:"bmr"`
	Maintenance    int    `json:"maintenance"`
	Gain           int    `json:"gain"`
	Lose           int    `json:"lose"`
	Recommendation string `json:"recommendation"`
	Warning        string `json:"warning"`
}

// ComputeCaloricNeeds estimates maintenance calories and target adjustments
// from a user profile and parallel weight/calorie histories, both ordered
// most-recent-first and covering the same days. Pure function: identical
// inputs yield identical results.
//
// The BMR is an empirical regression over current weight, height, age and
// sex, scaled by the profile's activity factor. Maintenance calories are the
// average recorded intake corrected by the energy equivalent of the weekly
// weight change, where the weekly change is the weight trend's displacement
// from the current weight scaled over the observed window.
func ComputeCaloricNeeds(profile domain.Profile, weights []float64, calories []int, cfg NeedsConfig) (CaloricNeeds, error) {
	if len(weights) != len(calories) {
		return CaloricNeeds{}, fmt.Errorf("%w: weight and calorie histories must have the same length", ErrData)
	}
	if len(weights) == 0 {
		return CaloricNeeds{}, fmt.Errorf("%w: no history recorded", ErrData)
	}

	pal, ok := cfg.ActivityFactors[profile.ActivityLevel]
	if !ok {
		return CaloricNeeds{}, fmt.Errorf("%w: invalid activity level %q", ErrData, profile.ActivityLevel)
	}

	bmr := 129.6*math.Pow(domain.PoundsToKilograms(weights[0]), 0.55) +
		0.011*math.Pow(domain.InchesToCentimeters(profile.HeightInches), 2)
	if profile.Age <= 60 {
		bmr -= 1.96 * float64(profile.Age)
	} else {
		bmr -= 4.9 * float64(profile.Age-60)
	}
	if profile.Sex == domain.Female {
		bmr -= 213.8
	}
	maintenanceBMR := bmr * pal

	trend, err := WeightTrend(weights, cfg.TrendHalfLifeDays)
	if err != nil {
		return CaloricNeeds{}, err
	}
	// Displacement of the trend from the current weight, scaled to a weekly
	// rate over the whole observed window.
	weeklyChange := (trend - weights[0]) / (float64(len(weights)) / 7.0)

	var total int
	for _, c := range calories {
		total += c
	}
	avgCalories := float64(total) / float64(len(calories))
	maintenance := avgCalories - weeklyChange*cfg.KcalPerPound

	gainOffset := cfg.GainPoundsPerWeek * cfg.KcalPerPound / 7
	loseOffset := cfg.LosePoundsPerWeek * cfg.KcalPerPound / 7
	gain := maintenance + gainOffset
	lose := maintenance - loseOffset

	var recommendation string
	switch {
	case weeklyChange >= -cfg.MaintainDelta && weeklyChange <= cfg.MaintainDelta:
		recommendation = "You are maintaining weight. Continue at your current calorie level\n" +
			"if you want to stay around this weight."
		// Stable weight: the most recent day's intake is the best
		// maintenance estimate.
		maintenance = float64(calories[0])
		gain = maintenance + gainOffset
		lose = maintenance - loseOffset
	case weeklyChange < -cfg.MaintainDelta:
		recommendation = fmt.Sprintf("You are losing weight at %.2f lbs/week. "+
			"Consider increasing calories if you don't want to lose weight this quickly.",
			math.Abs(weeklyChange))
	default:
		recommendation = fmt.Sprintf("You are gaining weight at %.2f lbs/week. "+
			"Consider reducing calories if you don't want to gain weight this quickly.",
			weeklyChange)
	}

	var warning string
	if weeklyChange < cfg.RapidLossPerWeek {
		warning = "Warning: You are losing weight too rapidly. Consider increasing calories."
	} else if weeklyChange > cfg.RapidGainPerWeek {
		warning = "Warning: You are gaining weight too rapidly. Consider reducing calories."
	}

	return CaloricNeeds{
		BMR:            int(math.Round(maintenanceBMR)),
		Maintenance:    int(math.Round(maintenance)),
		Gain:           int(math.Round(gain)),
		Lose:           int(math.Round(lose)),
		Recommendation: recommendation,
		Warning:        warning,
	}, nil
}

// NeedsService fetches a user's profile and histories and runs the caloric
// needs estimate over them.
type NeedsService struct {
	profiles domain.ProfileRepository
	history  domain.HistoryRepository
	cfg      NeedsConfig
}

// NewNeedsService creates a NeedsService backed by the given repositories.
func NewNeedsService(profiles domain.ProfileRepository, history domain.HistoryRepository, cfg NeedsConfig) *NeedsService {
	return &NeedsService{profiles: profiles, history: history, cfg: cfg}
}

// Calculate estimates caloric needs over the most recent periodDays of
// history; periodDays <= 0 uses all recorded data.
func (s *NeedsService) Calculate(ctx context.Context, userID int64, periodDays int) (CaloricNeeds, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return CaloricNeeds{}, err
	}
	if profile == nil {
		return CaloricNeeds{}, fmt.Errorf("%w: no profile for user", ErrData)
	}

	weightEntries, err := s.history.ListRecentWeights(ctx, userID, periodDays)
	if err != nil {
		return CaloricNeeds{}, err
	}
	calorieEntries, err := s.history.ListRecentCalories(ctx, userID, periodDays)
	if err != nil {
		return CaloricNeeds{}, err
	}

	weights := make([]float64, len(weightEntries))
	for i, e := range weightEntries {
		weights[i] = e.Pounds
	}
	calories := make([]int, len(calorieEntries))
	for i, e := range calorieEntries {
		calories[i] = e.Kcal
	}

	return ComputeCaloricNeeds(*profile, weights, calories, s.cfg)
}
