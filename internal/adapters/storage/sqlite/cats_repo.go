package sqlite

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/cats"
)

const catColumns = `id, owner_user_id, name, breed, description, age, created_at, updated_at`

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cats (`+catColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerUserID, c.Name, c.Breed, c.Description, c.Age,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	return mapErr(err)
}

func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cats SET name = ?, breed = ?, description = ?, age = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Breed, c.Description, c.Age, toMillis(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+catColumns+` FROM cats WHERE id = ?`, id)
	c, err := scanCat(row)
	if err != nil {
		return cats.Cat{}, mapErr(err)
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+catColumns+` FROM cats WHERE owner_user_id = ? ORDER BY created_at ASC, id ASC`,
		ownerUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete depende de PRAGMA foreign_keys para las cascadas.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = ?`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(s rowScanner) (cats.Cat, error) {
	var (
		c                cats.Cat
		created, updated int64
	)
	if err := s.Scan(&c.ID, &c.OwnerUserID, &c.Name, &c.Breed, &c.Description, &c.Age, &created, &updated); err != nil {
		return cats.Cat{}, err
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return c, nil
}
