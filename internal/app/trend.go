package app

import (
	"fmt"
	"math"
)

// WeightTrend computes a recency-weighted moving average of a weight series.
// weights must be ordered most-recent-first; the sample at position i is
// given decay weight exp(-i/halfLife), and the decay weights are normalised
// to sum to 1. The result damps day-to-day noise (hydration, meal timing)
// and estimates the settled weight.
func WeightTrend(weights []float64, halfLife int) (float64, error) {
	if halfLife <= 0 {
		return 0, fmt.Errorf("%w: half-life must be a positive number of days", ErrInvalidParameter)
	}
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: weight series is empty", ErrInvalidParameter)
	}

	var sum, norm float64
	for i, w := range weights {
		decay := math.Exp(-float64(i) / float64(halfLife))
		sum += w * decay
		norm += decay
	}
	return sum / norm, nil
}

// TrendSummary renders a one-line summary of a daily weight-change rate and
// an average calorie intake.
func TrendSummary(dailyChange, avgCalories float64, cfg NeedsConfig) string {
	var trend string
	switch {
	case math.Abs(dailyChange) <= cfg.MaintainDelta:
		trend = "you are maintaining your weight."
	case dailyChange > cfg.MaintainDelta:
		trend = fmt.Sprintf("you are gaining weight at %.2flbs/day.", dailyChange)
	default:
		trend = fmt.Sprintf("you are losing weight at %.2flbs/day.", math.Abs(dailyChange))
	}
	return fmt.Sprintf("Eating %d calories on average, %s", int(math.Round(avgCalories)), trend)
}
