package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"calculator/internal/domain"
)

// TransferService imports and exports history records as CSV with the
// columns Date, Weight, Calories.
type TransferService struct {
	history domain.HistoryRepository
}

// NewTransferService creates a TransferService backed by the given repository.
func NewTransferService(history domain.HistoryRepository) *TransferService {
	return &TransferService{history: history}
}

// Export writes all of a user's records as CSV in chronological order. Days
// with no entry in one of the histories leave that cell empty.
func (s *TransferService) Export(ctx context.Context, userID int64, w io.Writer) error {
	records, err := s.history.ListDayRecords(ctx, userID, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Weight", "Calories"}); err != nil {
		return err
	}
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		var weight, calories string
		if r.Pounds != nil {
			weight = strconv.FormatFloat(*r.Pounds, 'f', -1, 64)
		}
		if r.Kcal != nil {
			calories = strconv.Itoa(*r.Kcal)
		}
		if err := cw.Write([]string{r.Day, weight, calories}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Import reads CSV records and upserts them into the user's histories,
// returning the number of data rows processed. A row may omit either the
// Weight or the Calories cell.
func (s *TransferService) Import(ctx context.Context, userID int64, r io.Reader) (int, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: cannot read CSV header", ErrData)
	}
	dateCol, weightCol, caloriesCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "Date":
			dateCol = i
		case "Weight":
			weightCol = i
		case "Calories":
			caloriesCol = i
		}
	}
	if dateCol < 0 {
		return 0, fmt.Errorf("%w: CSV has no Date column", ErrData)
	}

	imported := 0
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("%w: line %d: %v", ErrData, line, err)
		}

		day := row[dateCol]
		if _, err := time.Parse(domain.DayFormat, day); err != nil {
			return imported, fmt.Errorf("%w: line %d: date must be YYYY-MM-DD", ErrData, line)
		}

		if weightCol >= 0 && weightCol < len(row) && row[weightCol] != "" {
			pounds, err := strconv.ParseFloat(row[weightCol], 64)
			if err != nil {
				return imported, fmt.Errorf("%w: line %d: bad weight %q", ErrData, line, row[weightCol])
			}
			if _, err := s.history.UpsertWeight(ctx, userID, day, pounds); err != nil {
				return imported, err
			}
		}
		if caloriesCol >= 0 && caloriesCol < len(row) && row[caloriesCol] != "" {
			kcal, err := strconv.Atoi(row[caloriesCol])
			if err != nil {
				return imported, fmt.Errorf("%w: line %d: bad calories %q", ErrData, line, row[caloriesCol])
			}
			if _, err := s.history.UpsertCalories(ctx, userID, day, kcal); err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}

// ExportFileName returns the dated default file name for an export.
func ExportFileName(now time.Time) string {
	return "data_" + now.Format("010206") + ".csv"
}
