package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/apperrors"
)

type toyRepo struct {
	db *DB
}

func NewToyRepo(db *DB) toys.Repository {
	return &toyRepo{db: db}
}

func (r *toyRepo) Create(ctx context.Context, t toys.Toy) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("toy id required")
	}
	if _, exists := r.db.toys[t.ID]; exists {
		return apperrors.ErrConflict
	}
	r.db.toys[t.ID] = t
	return nil
}

func (r *toyRepo) Update(ctx context.Context, t toys.Toy) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.toys[t.ID]; !exists {
		return apperrors.ErrNotFound
	}
	r.db.toys[t.ID] = t
	return nil
}

func (r *toyRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.toys[id]
	if !ok {
		return toys.Toy{}, apperrors.ErrNotFound
	}
	return t, nil
}

func (r *toyRepo) List(ctx context.Context) ([]toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]toys.Toy, 0, len(r.db.toys))
	for _, t := range r.db.toys {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete quita el juguete y sus vínculos; los gatos no se tocan.
func (r *toyRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.toys[id]; !exists {
		return apperrors.ErrNotFound
	}
	delete(r.db.toys, id)
	for k := range r.db.links {
		if k.toyID == id {
			delete(r.db.links, k)
		}
	}
	return nil
}
