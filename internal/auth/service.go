package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

// User is the credential-store view of an account.
type User struct {
	ID               int
	Email            string
	PasswordHash     string
	FullName         string
	Phone            string
	CreatedAt        time.Time
	ProfileCompleted bool
}

// ProfileUpdate carries the mutable profile fields. Nil means leave as-is.
type ProfileUpdate struct {
	FullName         *string
	Phone            *string
	ProfileCompleted *bool
}

// UserStore is the persistence the service needs; the repository package
// provides the ent-backed implementation.
type UserStore interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) error
}

// Surfaced verbatim to the caller.
var (
	ErrDuplicateEmail = errors.New("Email already registered")
	ErrEmailNotFound  = errors.New("Email not found")
	ErrWrongPassword  = errors.New("Wrong password")
)

// ErrUserNotFound reports a store miss.
var ErrUserNotFound = errors.New("user not found")

type Service struct {
	store      UserStore
	iterations int
	logger     *slog.Logger
}

func NewService(store UserStore, iterations int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Service{store: store, iterations: iterations, logger: logger}
}

// Register creates an account. Duplicate emails return ErrDuplicateEmail.
func (s *Service) Register(ctx context.Context, email, password, fullName, phone string) (*User, error) {
	email = strings.TrimSpace(email)
	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password, s.iterations)
	if err != nil {
		return nil, err
	}
	u, err := s.store.Create(ctx, &User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Phone:        phone,
	})
	if err != nil {
		s.logger.Error("register failed", "email", email, "error", err)
		return nil, err
	}
	s.logger.Info("user registered", "email", email, "user_id", u.ID)
	return u, nil
}

// Login verifies credentials and returns the account profile.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.store.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return nil, ErrWrongPassword
	}
	return u, nil
}

// GetByEmail looks up an account by email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.store.GetByEmail(ctx, strings.TrimSpace(email))
}

// UpdateProfile applies the given profile updates to an account.
func (s *Service) UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) error {
	return s.store.UpdateProfile(ctx, id, upd)
}
