package postgres

import (
	"context"
	"database/sql"

	"cat-collector/internal/domain/accounts"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u accounts.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	return mapErr(err)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`, username)
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg string) (accounts.User, error) {
	var u accounts.User
	err := r.db.QueryRowContext(ctx, q, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return accounts.User{}, mapErr(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}
