package domain

import (
	"context"
	"time"
)

// DayFormat is the calendar-day layout used throughout the history tables.
const DayFormat = "2006-01-02"

// WeightEntry records a morning scale weight in pounds for one calendar day.
type WeightEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Pounds    float64   `json:"pounds"`
	CreatedAt time.Time `json:"createdAt"`
}

// CalorieEntry records total calorie intake in kcal for one calendar day.
type CalorieEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Day       string    `json:"day"`
	Kcal      int       `json:"kcal"`
	CreatedAt time.Time `json:"createdAt"`
}

// DayRecord is a date-joined view row over the two histories. A nil field
// means no entry exists for that day in the corresponding history.
type DayRecord struct {
	Day    string   `json:"day"`
	Pounds *float64 `json:"pounds"`
	Kcal   *int     `json:"kcal"`
}

// HistoryRepository is the port for weight and calorie history persistence.
// At most one entry exists per user per day; Upsert methods report whether
// an existing entry was replaced. List methods return entries sorted by day
// descending (most recent first); limit <= 0 means no limit.
type HistoryRepository interface {
	UpsertWeight(ctx context.Context, userID int64, day string, pounds float64) (bool, error)
	UpsertCalories(ctx context.Context, userID int64, day string, kcal int) (bool, error)
	HasEntry(ctx context.Context, userID int64, day string) (bool, error)
	ListRecentWeights(ctx context.Context, userID int64, limit int) ([]WeightEntry, error)
	ListRecentCalories(ctx context.Context, userID int64, limit int) ([]CalorieEntry, error)
	ListDayRecords(ctx context.Context, userID int64, limit int) ([]DayRecord, error)
}
