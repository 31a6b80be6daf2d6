package photos

import "time"

// Photo solo nace como efecto de una subida exitosa.
type Photo struct {
	ID    string
	CatID string

	URL string
	Key string

	CreatedAt time.Time
}
