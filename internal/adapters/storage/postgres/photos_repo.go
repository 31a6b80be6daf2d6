package postgres

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/photos"
)

type PhotosRepo struct {
	db *sql.DB
}

func NewPhotosRepo(db *sql.DB) *PhotosRepo {
	return &PhotosRepo{db: db}
}

func (r *PhotosRepo) Create(ctx context.Context, p photos.Photo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO photos (id, cat_id, url, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.CatID, p.URL, p.Key, p.CreatedAt)
	return mapErr(err)
}

func (r *PhotosRepo) ListByCat(ctx context.Context, catID string) ([]photos.Photo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cat_id, url, storage_key, created_at
		FROM photos
		WHERE cat_id = $1
		ORDER BY created_at ASC, id ASC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]photos.Photo, 0)
	for rows.Next() {
		var p photos.Photo
		if err := rows.Scan(&p.ID, &p.CatID, &p.URL, &p.Key, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
