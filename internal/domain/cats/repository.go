package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	GetByID(ctx context.Context, id string) (Cat, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error)

	// Delete borra el gato junto con sus feedings, fotos y vínculos con juguetes.
	Delete(ctx context.Context, id string) error
}
