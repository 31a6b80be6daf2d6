package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cat-collector/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *sql.DB
}

func NewFeedingsRepo(db *sql.DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO feedings (id, cat_id, date, meal, created_at) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.CatID, f.Date.Format(feedings.DateLayout), string(f.Meal), toMillis(f.CreatedAt),
	)
	return mapErr(err)
}

// ListByCat: las fechas YYYY-MM-DD ordenan igual como texto.
func (r *FeedingsRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, cat_id, date, meal, created_at
		FROM feedings
		WHERE cat_id = ?
		ORDER BY date DESC, created_at DESC, id DESC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var (
			f       feedings.Feeding
			date    string
			meal    string
			created int64
		)
		if err := rows.Scan(&f.ID, &f.CatID, &date, &meal, &created); err != nil {
			return nil, err
		}
		d, err := time.Parse(feedings.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("feeding %s: bad date %q: %w", f.ID, date, err)
		}
		f.Date = d
		f.Meal = feedings.Meal(meal)
		f.CreatedAt = fromMillis(created)
		out = append(out, f)
	}
	return out, rows.Err()
}
