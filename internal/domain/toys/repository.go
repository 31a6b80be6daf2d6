package toys

import "context"

type Repository interface {
	Create(ctx context.Context, t Toy) error
	Update(ctx context.Context, t Toy) error
	GetByID(ctx context.Context, id string) (Toy, error)
	List(ctx context.Context) ([]Toy, error)

	// Delete elimina el juguete y lo desvincula de todos los gatos.
	Delete(ctx context.Context, id string) error
}
