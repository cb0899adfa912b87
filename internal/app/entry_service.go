package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calculator/internal/domain"
)

// ErrEntryExists indicates an entry already exists for the requested day and
// overwriting was not requested.
var ErrEntryExists = errors.New("entry already exists for this date")

// EntryService records daily weight and calorie entries.
type EntryService struct {
	history domain.HistoryRepository
}

// NewEntryService creates an EntryService backed by the given repository.
func NewEntryService(history domain.HistoryRepository) *EntryService {
	return &EntryService{history: history}
}

// Record validates and stores the weight and calorie figures for one
// calendar day. Existing entries for the day are only replaced when
// overwrite is set; otherwise ErrEntryExists is returned. The reported bool
// is true when an existing entry was replaced.
func (s *EntryService) Record(ctx context.Context, userID int64, day string, pounds float64, kcal int, overwrite bool) (bool, error) {
	if pounds <= 0 {
		return false, fmt.Errorf("%w: weight must be > 0", ErrInvalidParameter)
	}
	if kcal < 0 {
		return false, fmt.Errorf("%w: calories must be >= 0", ErrInvalidParameter)
	}
	d, err := time.ParseInLocation(domain.DayFormat, day, time.Local)
	if err != nil {
		return false, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidParameter)
	}
	if d.After(time.Now()) {
		return false, fmt.Errorf("%w: date is in the future", ErrInvalidParameter)
	}

	exists, err := s.history.HasEntry(ctx, userID, day)
	if err != nil {
		return false, err
	}
	if exists && !overwrite {
		return false, ErrEntryExists
	}

	replacedWeight, err := s.history.UpsertWeight(ctx, userID, day, pounds)
	if err != nil {
		return false, err
	}
	replacedCalories, err := s.history.UpsertCalories(ctx, userID, day, kcal)
	if err != nil {
		return false, err
	}
	return replacedWeight || replacedCalories, nil
}
