package toys

import "time"

const (
	MaxNameLen  = 50
	MaxColorLen = 50
)

// Toy tiene ciclo de vida propio: existe con o sin gatos asociados.
type Toy struct {
	ID    string
	Name  string
	Color string

	CreatedAt time.Time
}
