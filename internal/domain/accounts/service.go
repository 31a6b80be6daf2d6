package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cat-collector/internal/platform/apperrors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	cost int
	now  func() time.Time
}

// NewService usa bcrypt.DefaultCost si cost <= 0.
func NewService(repo Repository, cost int) *Service {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		repo: repo,
		cost: cost,
		now:  time.Now,
	}
}

func validUsername(username string) bool {
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@.+-_", r):
		default:
			return false
		}
	}
	return true
}

// Signup crea el usuario con la contraseña hasheada.
func (s *Service) Signup(ctx context.Context, username, password, confirm string) (User, error) {
	username = strings.TrimSpace(username)

	switch {
	case username == "":
		return User{}, apperrors.Invalid("username", "this field is required")
	case utf8.RuneCountInString(username) > MaxUsernameLen:
		return User{}, apperrors.Invalid("username", fmt.Sprintf("at most %d characters", MaxUsernameLen))
	case !validUsername(username):
		return User{}, apperrors.Invalid("username", "letters, digits and @/./+/-/_ only")
	case password == "":
		return User{}, apperrors.Invalid("password1", "this field is required")
	case password != confirm:
		return User{}, apperrors.Invalid("password2", "the two password fields didn't match")
	case utf8.RuneCountInString(password) < MinPasswordLen:
		return User{}, apperrors.Invalid("password1", fmt.Sprintf("at least %d characters", MinPasswordLen))
	case len(password) > maxPasswordBytes:
		return User{}, apperrors.Invalid("password1", fmt.Sprintf("at most %d bytes", maxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return User{}, apperrors.Invalid("username", "a user with that username already exists")
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Authenticate no distingue usuario inexistente de contraseña incorrecta.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, apperrors.ErrUnauthenticated
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return User{}, apperrors.ErrUnauthenticated
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, apperrors.ErrUnauthenticated
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}
