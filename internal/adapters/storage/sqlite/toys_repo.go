package sqlite

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/toys"
)

type ToysRepo struct {
	db *sql.DB
}

func NewToysRepo(db *sql.DB) *ToysRepo {
	return &ToysRepo{db: db}
}

func (r *ToysRepo) Create(ctx context.Context, t toys.Toy) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO toys (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.Color, toMillis(t.CreatedAt),
	)
	return mapErr(err)
}

func (r *ToysRepo) Update(ctx context.Context, t toys.Toy) error {
	res, err := r.db.ExecContext(ctx, `UPDATE toys SET name = ?, color = ? WHERE id = ?`, t.Name, t.Color, t.ID)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *ToysRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	var (
		t       toys.Toy
		created int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT id, name, color, created_at FROM toys WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Color, &created)
	if err != nil {
		return toys.Toy{}, mapErr(err)
	}
	t.CreatedAt = fromMillis(created)
	return t, nil
}

func (r *ToysRepo) List(ctx context.Context) ([]toys.Toy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, color, created_at FROM toys ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]toys.Toy, 0)
	for rows.Next() {
		var (
			t       toys.Toy
			created int64
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &created); err != nil {
			return nil, err
		}
		t.CreatedAt = fromMillis(created)
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ToysRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM toys WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}
