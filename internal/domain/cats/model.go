package cats

import "time"

const (
	MaxNameLen        = 100
	MaxBreedLen       = 100
	MaxDescriptionLen = 250
)

// Cat pertenece a exactamente un usuario.
// Sus feedings y fotos se borran en cascada; los juguetes solo se desvinculan.
type Cat struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Description string
	Age         int

	CreatedAt time.Time
	UpdatedAt time.Time
}
