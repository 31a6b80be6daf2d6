package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/platform/apperrors"
)

type catRepo struct {
	db *DB
}

func NewCatRepo(db *DB) cats.Repository {
	return &catRepo{db: db}
}

func (r *catRepo) Create(ctx context.Context, c cats.Cat) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.db.cats[c.ID]; exists {
		return apperrors.ErrConflict
	}
	r.db.cats[c.ID] = c
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.Cat) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.cats[c.ID]; !exists {
		return apperrors.ErrNotFound
	}
	r.db.cats[c.ID] = c
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.cats[id]
	if !ok {
		return cats.Cat{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]cats.Cat, 0)
	for _, c := range r.db.cats {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *catRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.cats[id]; !exists {
		return apperrors.ErrNotFound
	}
	r.db.deleteCatLocked(id)
	return nil
}
