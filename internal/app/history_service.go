package app

import (
	"context"

	"calculator/internal/domain"
)

// HistoryService exposes read-only views over the recorded histories.
type HistoryService struct {
	history domain.HistoryRepository
}

// NewHistoryService creates a HistoryService backed by the given repository.
func NewHistoryService(history domain.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// ListRecords returns date-joined weight/calorie rows for the most recent
// periodDays, most recent first; periodDays <= 0 returns all recorded data.
func (s *HistoryService) ListRecords(ctx context.Context, userID int64, periodDays int) ([]domain.DayRecord, error) {
	return s.history.ListDayRecords(ctx, userID, periodDays)
}
