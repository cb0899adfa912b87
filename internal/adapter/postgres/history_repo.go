package postgres

import (
	"context"
	"database/sql"
	"time"

	"calculator/internal/domain"
)

// UpsertWeight inserts or replaces the weight entry for one day.
func (d *DB) UpsertWeight(ctx context.Context, userID int64, day string, pounds float64) (bool, error) {
	replaced, err := d.hasRow(ctx, "weights", userID, day)
	if err != nil {
		return false, err
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO weights(user_id, day, pounds, created_at) VALUES($1, $2, $3, $4) ON CONFLICT(user_id, day) DO UPDATE SET pounds = EXCLUDED.pounds;",
		userID, day, pounds, time.Now().UTC(),
	)
	return replaced, err
}

// UpsertCalories inserts or replaces the calorie entry for one day.
func (d *DB) UpsertCalories(ctx context.Context, userID int64, day string, kcal int) (bool, error) {
	replaced, err := d.hasRow(ctx, "calories", userID, day)
	if err != nil {
		return false, err
	}
	_, err = d.sql.ExecContext(ctx,
		"INSERT INTO calories(user_id, day, kcal, created_at) VALUES($1, $2, $3, $4) ON CONFLICT(user_id, day) DO UPDATE SET kcal = EXCLUDED.kcal;",
		userID, day, kcal, time.Now().UTC(),
	)
	return replaced, err
}

// HasEntry reports whether either history has an entry for the given day.
func (d *DB) HasEntry(ctx context.Context, userID int64, day string) (bool, error) {
	w, err := d.hasRow(ctx, "weights", userID, day)
	if err != nil || w {
		return w, err
	}
	return d.hasRow(ctx, "calories", userID, day)
}

func (d *DB) hasRow(ctx context.Context, table string, userID int64, day string) (bool, error) {
	// table is one of the fixed history table names, never user input.
	var exists bool
	err := d.sql.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM "+table+" WHERE user_id = $1 AND day = $2);",
		userID, day,
	).Scan(&exists)
	return exists, err
}

// ListRecentWeights returns weight entries sorted by day descending; limit <= 0
// returns all.
func (d *DB) ListRecentWeights(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	query := "SELECT id, user_id, day, pounds, created_at FROM weights WHERE user_id = $1 ORDER BY day DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightEntry
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Day, &e.Pounds, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListRecentCalories returns calorie entries sorted by day descending; limit <= 0
// returns all.
func (d *DB) ListRecentCalories(ctx context.Context, userID int64, limit int) ([]domain.CalorieEntry, error) {
	query := "SELECT id, user_id, day, kcal, created_at FROM calories WHERE user_id = $1 ORDER BY day DESC"
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CalorieEntry
	for rows.Next() {
		var e domain.CalorieEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Day, &e.Kcal, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListDayRecords returns date-joined weight/calorie rows sorted by day
// descending; limit <= 0 returns all.
func (d *DB) ListDayRecords(ctx context.Context, userID int64, limit int) ([]domain.DayRecord, error) {
	query := `SELECT COALESCE(w.day, c.day) AS day, w.pounds, c.kcal
		FROM (SELECT day, pounds FROM weights WHERE user_id = $1) w
		FULL OUTER JOIN (SELECT day, kcal FROM calories WHERE user_id = $1) c ON c.day = w.day
		ORDER BY day DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := d.sql.QueryContext(ctx, query+";", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.DayRecord
	for rows.Next() {
		var r domain.DayRecord
		var pounds sql.NullFloat64
		var kcal sql.NullInt64
		if err := rows.Scan(&r.Day, &pounds, &kcal); err != nil {
			return nil, err
		}
		if pounds.Valid {
			r.Pounds = &pounds.Float64
		}
		if kcal.Valid {
			k := int(kcal.Int64)
			r.Kcal = &k
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
