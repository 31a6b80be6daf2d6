package accounts

import "context"

type Repository interface {
	// Create devuelve apperrors.ErrConflict si el username ya existe.
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}
