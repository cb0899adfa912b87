package app

import "calculator/internal/domain"

// NeedsConfig collects the tunable constants of the caloric needs estimate.
// The defaults reproduce the published regression and the usual 3500 kcal/lb
// energy equivalence.
type NeedsConfig struct {
	// KcalPerPound is the assumed energy content of one pound of body mass.
	KcalPerPound float64
	// MaintainDelta is the weekly rate (lbs/week) within which weight is
	// considered stable.
	MaintainDelta float64
	// RapidLossPerWeek and RapidGainPerWeek are the weekly rates beyond
	// which a rapid-change warning is raised. RapidLossPerWeek is negative.
	RapidLossPerWeek float64
	RapidGainPerWeek float64
	// GainPoundsPerWeek and LosePoundsPerWeek size the gain/lose calorie
	// targets relative to maintenance.
	GainPoundsPerWeek float64
	LosePoundsPerWeek float64
	// TrendHalfLifeDays is the decay half-life of the weight trend average.
	TrendHalfLifeDays int
	// ActivityFactors maps activity levels to their PAL multipliers.
	ActivityFactors map[domain.ActivityLevel]float64
}

// DefaultNeedsConfig returns the standard estimation constants.
func DefaultNeedsConfig() NeedsConfig {
	return NeedsConfig{
		KcalPerPound:      3500,
		MaintainDelta:     0.1,
		RapidLossPerWeek:  -1.5,
		RapidGainPerWeek:  0.75,
		GainPoundsPerWeek: 0.5,
		LosePoundsPerWeek: 1.0,
		TrendHalfLifeDays: 7,
		ActivityFactors: map[domain.ActivityLevel]float64{
			domain.Sedentary:        1.2,
			domain.LightlyActive:    1.375,
			domain.ModeratelyActive: 1.55,
			domain.VeryActive:       1.725,
			domain.ExtremelyActive:  1.9,
		},
	}
}
