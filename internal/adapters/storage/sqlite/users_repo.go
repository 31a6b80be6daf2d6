package sqlite

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
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.Username, u.PasswordHash, toMillis(u.CreatedAt),
	)
	return mapErr(err)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	return r.getOne(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
}

func (r *UsersRepo) getOne(ctx context.Context, q string, arg string) (accounts.User, error) {
	var (
		u       accounts.User
		created int64
	)
	if err := r.db.QueryRowContext(ctx, q, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &created); err != nil {
		return accounts.User{}, mapErr(err)
	}
	u.CreatedAt = fromMillis(created)
	return u, nil
}
