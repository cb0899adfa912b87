package app

import (
	"context"
	"fmt"

	"calculator/internal/domain"
)

// TrendsService summarises weight movement over a period.
type TrendsService struct {
	history domain.HistoryRepository
	cfg     NeedsConfig
}

// NewTrendsService creates a TrendsService backed by the given repository.
func NewTrendsService(history domain.HistoryRepository, cfg NeedsConfig) *TrendsService {
	return &TrendsService{history: history, cfg: cfg}
}

// PeriodTrend describes weight movement over an observed window.
type PeriodTrend struct {
	Start        string               `json:"start"`
	End          string               `json:"end"`
	AvgWeight    float64              `json:"avgWeight"`
	WeightChange float64              `json:"weightChange"`
	Summary      string               `json:"summary"`
	Points       []domain.WeightEntry `json:"points"`
}

// GetPeriod returns average weight, signed change (newest minus oldest), the
// raw points for charting, and a one-line summary for the most recent
// periodDays of history; periodDays <= 0 uses all recorded data.
func (s *TrendsService) GetPeriod(ctx context.Context, userID int64, periodDays int) (PeriodTrend, error) {
	points, err := s.history.ListRecentWeights(ctx, userID, periodDays)
	if err != nil {
		return PeriodTrend{}, err
	}
	if len(points) == 0 {
		return PeriodTrend{}, fmt.Errorf("%w: no weight history recorded", ErrData)
	}

	weights := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		weights[i] = p.Pounds
		sum += p.Pounds
	}

	out := PeriodTrend{
		Start:        points[len(points)-1].Day,
		End:          points[0].Day,
		AvgWeight:    sum / float64(len(points)),
		WeightChange: points[0].Pounds - points[len(points)-1].Pounds,
		Points:       points,
	}

	trend, err := WeightTrend(weights, s.cfg.TrendHalfLifeDays)
	if err != nil {
		return PeriodTrend{}, err
	}
	weeklyChange := (trend - weights[0]) / (float64(len(weights)) / 7.0)

	calories, err := s.history.ListRecentCalories(ctx, userID, periodDays)
	if err != nil {
		return PeriodTrend{}, err
	}
	if len(calories) > 0 {
		var total int
		for _, c := range calories {
			total += c.Kcal
		}
		avgCalories := float64(total) / float64(len(calories))
		out.Summary = TrendSummary(weeklyChange/7.0, avgCalories, s.cfg)
	}

	return out, nil
}
