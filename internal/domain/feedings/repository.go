package feedings

import "context"

type Repository interface {
	Create(ctx context.Context, f Feeding) error

	// ListByCat ordena por fecha desc; empates por created_at desc y luego id.
	ListByCat(ctx context.Context, catID string) ([]Feeding, error)
}
