package postgres

import (
	"context"
	"database/sql"
	"errors"

	"calculator/internal/domain"
)

// GetProfile retrieves a user's profile, or nil if none exists.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	err := d.sql.QueryRowContext(ctx,
		"SELECT user_id, sex, age, height_inches, activity_level FROM profiles WHERE user_id = $1;",
		userID,
	).Scan(&p.UserID, &p.Sex, &p.Age, &p.HeightInches, &p.ActivityLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile creates or replaces a user's profile.
func (d *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles(user_id, sex, age, height_inches, activity_level) VALUES($1, $2, $3, $4, $5)
		ON CONFLICT(user_id) DO UPDATE SET sex = EXCLUDED.sex, age = EXCLUDED.age, height_inches = EXCLUDED.height_inches, activity_level = EXCLUDED.activity_level;`,
		p.UserID, p.Sex, p.Age, p.HeightInches, p.ActivityLevel,
	)
	return err
}
