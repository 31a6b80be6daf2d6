package memory

import (
	"context"
	"errors"
	"strings"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/platform/apperrors"
)

type userRepo struct {
	db *DB
}

func NewUserRepo(db *DB) accounts.Repository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u accounts.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.db.users[u.ID]; exists {
		return apperrors.ErrConflict
	}
	if _, taken := r.db.usernames[u.Username]; taken {
		return apperrors.ErrConflict
	}
	r.db.users[u.ID] = u
	r.db.usernames[u.Username] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	u, ok := r.db.users[id]
	if !ok {
		return accounts.User{}, apperrors.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	id, ok := r.db.usernames[username]
	if !ok {
		return accounts.User{}, apperrors.ErrNotFound
	}
	return r.db.users[id], nil
}
