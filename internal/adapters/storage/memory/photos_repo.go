package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/photos"
	"cat-collector/internal/platform/apperrors"
)

type photoRepo struct {
	db *DB
}

func NewPhotoRepo(db *DB) photos.Repository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p photos.Photo) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("photo id required")
	}
	if _, ok := r.db.cats[p.CatID]; !ok {
		return apperrors.ErrNotFound
	}
	r.db.photos[p.ID] = p
	return nil
}

func (r *photoRepo) ListByCat(ctx context.Context, catID string) ([]photos.Photo, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]photos.Photo, 0)
	for _, p := range r.db.photos {
		if p.CatID == catID {
			out = append(out, p)
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
