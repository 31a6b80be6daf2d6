package sqlite

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/associations"
)

type AssociationsRepo struct {
	db *sql.DB
}

func NewAssociationsRepo(db *sql.DB) *AssociationsRepo {
	return &AssociationsRepo{db: db}
}

func (r *AssociationsRepo) Add(ctx context.Context, l associations.Link) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cat_toys (cat_id, toy_id, created_at) VALUES (?, ?, ?) ON CONFLICT (cat_id, toy_id) DO NOTHING`,
		l.CatID, l.ToyID, toMillis(l.CreatedAt),
	)
	return mapErr(err)
}

func (r *AssociationsRepo) Remove(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cat_toys WHERE cat_id = ? AND toy_id = ?`, catID, toyID)
	return mapErr(err)
}

// ListFor ordena por rowid: orden de inserción.
func (r *AssociationsRepo) ListFor(ctx context.Context, catID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT toy_id FROM cat_toys WHERE cat_id = ? ORDER BY rowid ASC`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
