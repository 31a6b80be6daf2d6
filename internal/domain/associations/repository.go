package associations

import "context"

// Repository es la tabla de unión explícita gato↔juguete.
type Repository interface {
	// Add es idempotente: un vínculo existente no es error.
	Add(ctx context.Context, l Link) error

	// Remove sobre un vínculo inexistente es no-op.
	Remove(ctx context.Context, catID, toyID string) error

	// ListFor devuelve los IDs de juguetes del gato en orden de vinculación.
	ListFor(ctx context.Context, catID string) ([]string, error)
}
