package postgres

import (
	"context"
	"database/sql"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/platform/apperrors"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapErr(err)
}

func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			name = $2,
			breed = $3,
			description = $4,
			age = $5,
			updated_at = $6
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.UpdatedAt,
	)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, apperrors.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	c, err := scanCat(row)
	if err != nil {
		return cats.Cat{}, mapErr(err)
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
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

// Delete depende de ON DELETE CASCADE para feedings, photos y cat_toys.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(s rowScanner) (cats.Cat, error) {
	var c cats.Cat
	if err := s.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Breed,
		&c.Description,
		&c.Age,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return cats.Cat{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
