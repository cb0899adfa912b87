package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"calculator/internal/app"
	"calculator/internal/domain"
)

type mockProfileRepo struct {
	getFn  func(ctx context.Context, userID int64) (*domain.Profile, error)
	saveFn func(ctx context.Context, p domain.Profile) error
}

func (m *mockProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) SaveProfile(ctx context.Context, p domain.Profile) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, p)
	}
	return nil
}

type mockHistoryRepo struct {
	upsertWeightFn   func(ctx context.Context, userID int64, day string, pounds float64) (bool, error)
	upsertCaloriesFn func(ctx context.Context, userID int64, day string, kcal int) (bool, error)
	hasEntryFn       func(ctx context.Context, userID int64, day string) (bool, error)
	listWeightsFn    func(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error)
	listCaloriesFn   func(ctx context.Context, userID int64, limit int) ([]domain.CalorieEntry, error)
	listRecordsFn    func(ctx context.Context, userID int64, limit int) ([]domain.DayRecord, error)
}

func (m *mockHistoryRepo) UpsertWeight(ctx context.Context, userID int64, day string, pounds float64) (bool, error) {
	if m.upsertWeightFn != nil {
		return m.upsertWeightFn(ctx, userID, day, pounds)
	}
	return false, nil
}

func (m *mockHistoryRepo) UpsertCalories(ctx context.Context, userID int64, day string, kcal int) (bool, error) {
	if m.upsertCaloriesFn != nil {
		return m.upsertCaloriesFn(ctx, userID, day, kcal)
	}
	return false, nil
}

func (m *mockHistoryRepo) HasEntry(ctx context.Context, userID int64, day string) (bool, error) {
	if m.hasEntryFn != nil {
		return m.hasEntryFn(ctx, userID, day)
	}
	return false, nil
}

func (m *mockHistoryRepo) ListRecentWeights(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	if m.listWeightsFn != nil {
		return m.listWeightsFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockHistoryRepo) ListRecentCalories(ctx context.Context, userID int64, limit int) ([]domain.CalorieEntry, error) {
	if m.listCaloriesFn != nil {
		return m.listCaloriesFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockHistoryRepo) ListDayRecords(ctx context.Context, userID int64, limit int) ([]domain.DayRecord, error) {
	if m.listRecordsFn != nil {
		return m.listRecordsFn(ctx, userID, limit)
	}
	return nil, nil
}

func maleProfile() domain.Profile {
	return domain.Profile{
		UserID:        1,
		Sex:           domain.Male,
		Age:           30,
		HeightInches:  70,
		ActivityLevel: domain.Sedentary,
	}
}

func TestComputeCaloricNeeds_LengthMismatch(t *testing.T) {
	weights := []float64{180, 181, 182, 183, 184}
	calories := []int{2500, 2500, 2500, 2500}
	_, err := app.ComputeCaloricNeeds(maleProfile(), weights, calories, app.DefaultNeedsConfig())
	if !errors.Is(err, app.ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
}

func TestComputeCaloricNeeds_EmptyHistory(t *testing.T) {
	_, err := app.ComputeCaloricNeeds(maleProfile(), nil, nil, app.DefaultNeedsConfig())
	if !errors.Is(err, app.ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
}

func TestComputeCaloricNeeds_UnknownActivityLevel(t *testing.T) {
	profile := maleProfile()
	profile.ActivityLevel = domain.ActivityLevel("super_active")
	_, err := app.ComputeCaloricNeeds(profile, []float64{180}, []int{2500}, app.DefaultNeedsConfig())
	if !errors.Is(err, app.ErrData) {
		t.Fatalf("expected ErrData, got %v", err)
	}
	if !strings.Contains(err.Error(), "activity level") {
		t.Errorf("error should name the activity level: %v", err)
	}
}

func TestComputeCaloricNeeds_GainingScenario(t *testing.T) {
	// Rising weight on constant intake: a week of daily gains.
	weights := []float64{180, 181, 182, 183, 184, 185, 186}
	calories := []int{2500, 2500, 2500, 2500, 2500, 2500, 2500}

	got, err := app.ComputeCaloricNeeds(maleProfile(), weights, calories, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got.Recommendation, "You are gaining weight at") {
		t.Errorf("expected gaining recommendation, got %q", got.Recommendation)
	}
	// The trend sits above the current weight, so the weekly rate is
	// positive and well past the rapid-gain threshold.
	if !strings.Contains(got.Warning, "gaining weight too rapidly") {
		t.Errorf("expected rapid-gain warning, got %q", got.Warning)
	}
	// BMR for a sedentary 30-year-old male, 70in, 180lbs lands around 2100.
	if got.BMR < 1900 || got.BMR > 2300 {
		t.Errorf("BMR out of plausible range: %d", got.BMR)
	}
	// Gaining means maintenance is corrected below average intake.
	if got.Maintenance >= 2500 {
		t.Errorf("expected maintenance below average intake, got %d", got.Maintenance)
	}
	if got.Gain != got.Maintenance+250 {
		t.Errorf("gain = %d, want maintenance+250 = %d", got.Gain, got.Maintenance+250)
	}
	if got.Lose != got.Maintenance-500 {
		t.Errorf("lose = %d, want maintenance-500 = %d", got.Lose, got.Maintenance-500)
	}
}

func TestComputeCaloricNeeds_SingleDayMaintains(t *testing.T) {
	// One sample: the trend equals the weight, the weekly change is zero,
	// and maintenance is overridden to the day's intake.
	got, err := app.ComputeCaloricNeeds(maleProfile(), []float64{150}, []int{2000}, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got.Recommendation, "maintaining weight") {
		t.Errorf("expected maintaining recommendation, got %q", got.Recommendation)
	}
	if got.Maintenance != 2000 {
		t.Errorf("maintenance = %d, want 2000", got.Maintenance)
	}
	if got.Gain != 2250 {
		t.Errorf("gain = %d, want 2250", got.Gain)
	}
	if got.Lose != 1500 {
		t.Errorf("lose = %d, want 1500", got.Lose)
	}
	if got.Warning != "" {
		t.Errorf("expected no warning, got %q", got.Warning)
	}
}

func TestComputeCaloricNeeds_FemaleAdjustment(t *testing.T) {
	male := maleProfile()
	female := male
	female.Sex = domain.Female

	m, err := app.ComputeCaloricNeeds(male, []float64{150}, []int{2000}, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := app.ComputeCaloricNeeds(female, []float64{150}, []int{2000}, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The 213.8 kcal sex adjustment is applied before the PAL multiplier.
	diff := m.BMR - f.BMR
	want := 213.8 * 1.2
	if float64(diff) < want-1 || float64(diff) > want+1 {
		t.Errorf("male-female BMR difference = %d, want ~%.0f", diff, want)
	}
}

func TestComputeCaloricNeeds_Idempotent(t *testing.T) {
	weights := []float64{165.2, 165.8, 164.9, 166.1, 165.5}
	calories := []int{2100, 2300, 1900, 2200, 2000}

	first, err := app.ComputeCaloricNeeds(maleProfile(), weights, calories, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := app.ComputeCaloricNeeds(maleProfile(), weights, calories, app.DefaultNeedsConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("results differ across identical calls: %+v vs %+v", first, second)
	}
}

func TestNeedsService_MissingProfile(t *testing.T) {
	svc := app.NewNeedsService(&mockProfileRepo{}, &mockHistoryRepo{}, app.DefaultNeedsConfig())
	_, err := svc.Calculate(context.Background(), 1, 0)
	if !errors.Is(err, app.ErrData) {
		t.Fatalf("expected ErrData for missing profile, got %v", err)
	}
}

func TestNeedsService_Calculate(t *testing.T) {
	profile := maleProfile()
	profiles := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			return &profile, nil
		},
	}
	history := &mockHistoryRepo{
		listWeightsFn: func(_ context.Context, _ int64, limit int) ([]domain.WeightEntry, error) {
			if limit != 30 {
				t.Fatalf("unexpected limit: %d", limit)
			}
			return []domain.WeightEntry{
				{Day: "2026-08-29", Pounds: 150},
			}, nil
		},
		listCaloriesFn: func(_ context.Context, _ int64, _ int) ([]domain.CalorieEntry, error) {
			return []domain.CalorieEntry{
				{Day: "2026-08-29", Kcal: 2000},
			}, nil
		},
	}

	svc := app.NewNeedsService(profiles, history, app.DefaultNeedsConfig())
	got, err := svc.Calculate(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Maintenance != 2000 {
		t.Errorf("maintenance = %d, want 2000", got.Maintenance)
	}
}

func TestNeedsService_RepoError(t *testing.T) {
	profile := maleProfile()
	profiles := &mockProfileRepo{
		getFn: func(_ context.Context, _ int64) (*domain.Profile, error) {
			return &profile, nil
		},
	}
	history := &mockHistoryRepo{
		listWeightsFn: func(_ context.Context, _ int64, _ int) ([]domain.WeightEntry, error) {
			return nil, errors.New("db down")
		},
	}

	svc := app.NewNeedsService(profiles, history, app.DefaultNeedsConfig())
	if _, err := svc.Calculate(context.Background(), 1, 0); err == nil {
		t.Fatal("expected error from repo")
	}
}
