package photos

import "context"

type Repository interface {
	Create(ctx context.Context, p Photo) error
	ListByCat(ctx context.Context, catID string) ([]Photo, error)
}
