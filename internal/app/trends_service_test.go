package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calculator/internal/app"
	"calculator/internal/domain"
)

func TestGetPeriod_NoHistory(t *testing.T) {
	svc := app.NewTrendsService(&mockHistoryRepo{}, app.DefaultNeedsConfig())
	_, err := svc.GetPeriod(context.Background(), 1, 30)
	if !errors.Is(err, app.ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
}

func TestGetPeriod_Summary(t *testing.T) {
	repo := &mockHistoryRepo{
		listWeightsFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return []domain.WeightEntry{
				{Day: "2026-08-07", Pounds: 181},
				{Day: "2026-08-06", Pounds: 180.5},
				{Day: "2026-08-05", Pounds: 180},
			}, nil
		},
		listCaloriesFn: func(_ context.Context, _ int64, _ int) ([]domain.CalorieEntry, error) {
			return []domain.CalorieEntry{
				{Day: "2026-08-07", Kcal: 2400},
				{Day: "2026-08-06", Kcal: 2600},
				{Day: "2026-08-05", Kcal: 2500},
			}, nil
		},
	}

	svc := app.NewTrendsService(repo, app.DefaultNeedsConfig())
	got, err := svc.GetPeriod(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Start != "2026-08-05" || got.End != "2026-08-07" {
		t.Errorf("unexpected range: %s..%s", got.Start, got.End)
	}
	if !almostEqual(got.AvgWeight, 180.5, 1e-9) {
		t.Errorf("avgWeight = %v, want 180.5", got.AvgWeight)
	}
	if !almostEqual(got.WeightChange, 1.0, 1e-9) {
		t.Errorf("weightChange = %v, want 1.0", got.WeightChange)
	}
	if len(got.Points) != 3 {
		t.Errorf("expected 3 points, got %d", len(got.Points))
	}
	if !strings.HasPrefix(got.Summary, "Eating 2500 calories on average,") {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
}

func TestGetPeriod_NoCaloriesNoSummary(t *testing.T) {
	repo := &mockHistoryRepo{
		listWeightsFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return []domain.WeightEntry{{Day: "2026-08-07", Pounds: 181}}, nil
		},
	}

	svc := app.NewTrendsService(repo, app.DefaultNeedsConfig())
	got, err := svc.GetPeriod(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary != "" {
		t.Errorf("expected empty summary without calorie data, got %q", got.Summary)
	}
}
