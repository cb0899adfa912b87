// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"calculator/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	users    []*domain.User
	profiles map[int64]domain.Profile
	weights  map[int64]map[string]domain.WeightEntry
	calories map[int64]map[string]domain.CalorieEntry
	sessions map[string]*domain.Session

	userIDCounter  int64
	entryIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.Profile),
		weights:  make(map[int64]map[string]domain.WeightEntry),
		calories: make(map[int64]map[string]domain.CalorieEntry),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.HistoryRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- ProfileRepository ---

// GetProfile returns the stored profile, or nil.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// SaveProfile creates or replaces a profile.
func (db *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.profiles[p.UserID] = p
	return nil
}

// --- HistoryRepository ---

// UpsertWeight inserts or replaces the weight entry for one day.
func (db *DB) UpsertWeight(ctx context.Context, userID int64, day string, pounds float64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	byDay, ok := db.weights[userID]
	if !ok {
		byDay = make(map[string]domain.WeightEntry)
		db.weights[userID] = byDay
	}

	if existing, ok := byDay[day]; ok {
		existing.Pounds = pounds
		byDay[day] = existing
		return true, nil
	}

	db.entryIDCounter++
	byDay[day] = domain.WeightEntry{
		ID:        db.entryIDCounter,
		UserID:    userID,
		Day:       day,
		Pounds:    pounds,
		CreatedAt: time.Now().UTC(),
	}
	return false, nil
}

// UpsertCalories inserts or replaces the calorie entry for one day.
func (db *DB) UpsertCalories(ctx context.Context, userID int64, day string, kcal int) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	byDay, ok := db.calories[userID]
	if !ok {
		byDay = make(map[string]domain.CalorieEntry)
		db.calories[userID] = byDay
	}

	if existing, ok := byDay[day]; ok {
		existing.Kcal = kcal
		byDay[day] = existing
		return true, nil
	}

	db.entryIDCounter++
	byDay[day] = domain.CalorieEntry{
		ID:        db.entryIDCounter,
		UserID:    userID,
		Day:       day,
		Kcal:      kcal,
		CreatedAt: time.Now().UTC(),
	}
	return false, nil
}

// HasEntry reports whether either history has an entry for the given day.
func (db *DB) HasEntry(ctx context.Context, userID int64, day string) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.weights[userID][day]; ok {
		return true, nil
	}
	_, ok := db.calories[userID][day]
	return ok, nil
}

// ListRecentWeights lists weight entries, most recent day first.
func (db *DB) ListRecentWeights(ctx context.Context, userID int64, limit int) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.WeightEntry, 0, len(db.weights[userID]))
	for _, e := range db.weights[userID] {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day > result[j].Day
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListRecentCalories lists calorie entries, most recent day first.
func (db *DB) ListRecentCalories(ctx context.Context, userID int64, limit int) ([]domain.CalorieEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.CalorieEntry, 0, len(db.calories[userID]))
	for _, e := range db.calories[userID] {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day > result[j].Day
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ListDayRecords lists date-joined rows, most recent day first.
func (db *DB) ListDayRecords(ctx context.Context, userID int64, limit int) ([]domain.DayRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	days := make(map[string]struct{})
	for day := range db.weights[userID] {
		days[day] = struct{}{}
	}
	for day := range db.calories[userID] {
		days[day] = struct{}{}
	}

	result := make([]domain.DayRecord, 0, len(days))
	for day := range days {
		r := domain.DayRecord{Day: day}
		if w, ok := db.weights[userID][day]; ok {
			pounds := w.Pounds
			r.Pounds = &pounds
		}
		if c, ok := db.calories[userID][day]; ok {
			kcal := c.Kcal
			r.Kcal = &kcal
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Day > result[j].Day
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- UserRepository ---

// GetByUsername returns the user with the given username, or nil.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// GetByID returns the user with the given ID, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			ret := *u
			return &ret, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	ret := *u
	return &ret, nil
}

// --- SessionRepository ---

// SessionRepo implements session repository operations on an in-memory DB.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps a DB as a SessionRepository.
func NewSessionRepo(db *DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken returns the session with the given token, or nil.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	ret := *s
	return &ret, nil
}

// Delete deletes a session by token.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := time.Now()
	for token, s := range r.db.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.db.sessions, token)
		}
	}
	return nil
}
