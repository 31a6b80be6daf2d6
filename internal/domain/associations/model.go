package associations

import "time"

// Link es una fila de la tabla cat_toys.
type Link struct {
	CatID string
	ToyID string

	CreatedAt time.Time
}
