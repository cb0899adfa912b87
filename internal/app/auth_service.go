package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"calculator/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrUserNotFound indicates that the user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken indicates that the requested username is already in use.
	ErrUsernameTaken = errors.New("username already taken")
)

const sessionTTL = 24 * time.Hour

// Registration carries the fields collected when a new account is created.
type Registration struct {
	Username      string
	Password      string
	Sex           string
	Age           int
	HeightInches  float64
	ActivityLevel string
}

// AuthService handles registration, authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	profiles domain.ProfileRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, profiles domain.ProfileRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		sessions: sessions,
	}
}

// Register creates a new user together with their profile.
func (s *AuthService) Register(ctx context.Context, reg Registration) (*domain.User, error) {
	if reg.Username == "" || reg.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidParameter)
	}
	sex, err := domain.ParseSex(reg.Sex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	level, err := domain.ParseActivityLevel(reg.ActivityLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if reg.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be > 0", ErrInvalidParameter)
	}
	if reg.HeightInches <= 0 {
		return nil, fmt.Errorf("%w: height must be > 0", ErrInvalidParameter)
	}

	if existing, err := s.users.GetByUsername(ctx, reg.Username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, reg.Username, string(hash))
	if err != nil {
		return nil, err
	}

	profile := domain.Profile{
		UserID:        user.ID,
		Sex:           sex,
		Age:           reg.Age,
		HeightInches:  reg.HeightInches,
		ActivityLevel: level,
	}
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil || user.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.createSession(ctx, user.ID)
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks if a session token is valid.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil || session == nil {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil || user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// ValidateForwardAuth validates a request from a forward-auth proxy by the
// Remote-User header it sets, provisioning the user on first sight.
func (s *AuthService) ValidateForwardAuth(ctx context.Context, remoteUser string) (*domain.User, error) {
	if remoteUser == "" {
		return nil, errors.New("no remote user header")
	}

	user, err := s.users.GetByUsername(ctx, remoteUser)
	if err != nil || user == nil {
		// Auto-create user from SSO. Empty password hash: they never log
		// in with a password.
		user, err = s.users.Create(ctx, remoteUser, "")
		if err != nil {
			return nil, err
		}
	}

	return user, nil
}

// LoginWithUser creates a session for an already authenticated user (e.g.
// via SSO), provisioning them on first sight.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		user, err = s.users.Create(ctx, username, "")
		if err != nil {
			// Retry the lookup in case creation lost a race on the
			// unique constraint.
			user, err = s.users.GetByUsername(ctx, username)
			if err != nil || user == nil {
				return "", err
			}
		}
	}

	return s.createSession(ctx, user.ID)
}

func (s *AuthService) createSession(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, userID, token, time.Now().Add(sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
