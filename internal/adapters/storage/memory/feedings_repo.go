package memory

import (
	"context"
	"errors"
	"strings"

	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/platform/apperrors"
)

type feedingRepo struct {
	db *DB
}

func NewFeedingRepo(db *DB) feedings.Repository {
	return &feedingRepo{db: db}
}

func (r *feedingRepo) Create(ctx context.Context, f feedings.Feeding) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(f.ID) == "" {
		return errors.New("feeding id required")
	}
	if _, ok := r.db.cats[f.CatID]; !ok {
		return apperrors.ErrNotFound
	}
	r.db.feedings[f.ID] = f
	return nil
}

func (r *feedingRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.db.feedings {
		if f.CatID == catID {
			out = append(out, f)
		}
	}
	feedings.SortNewestFirst(out)
	return out, nil
}
