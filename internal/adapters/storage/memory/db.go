package memory

import (
	"sync"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/associations"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
)

type linkKey struct {
	catID string
	toyID string
}

type linkRow struct {
	link associations.Link
	seq  uint64
}

// DB es el estado compartido por todos los repos in-memory.
// Un solo mutex permite borrar un gato y sus dependientes de forma atómica.
type DB struct {
	mu sync.RWMutex

	users      map[string]accounts.User
	usernames  map[string]string // username => id
	cats       map[string]cats.Cat
	toys       map[string]toys.Toy
	links      map[linkKey]linkRow
	feedings   map[string]feedings.Feeding
	photos     map[string]photos.Photo
	linkSeqGen uint64
}

func NewDB() *DB {
	return &DB{
		users:     make(map[string]accounts.User),
		usernames: make(map[string]string),
		cats:      make(map[string]cats.Cat),
		toys:      make(map[string]toys.Toy),
		links:     make(map[linkKey]linkRow),
		feedings:  make(map[string]feedings.Feeding),
		photos:    make(map[string]photos.Photo),
	}
}

// deleteCatLocked asume db.mu tomado en escritura.
func (db *DB) deleteCatLocked(catID string) {
	delete(db.cats, catID)
	for k := range db.links {
		if k.catID == catID {
			delete(db.links, k)
		}
	}
	for id, f := range db.feedings {
		if f.CatID == catID {
			delete(db.feedings, id)
		}
	}
	for id, p := range db.photos {
		if p.CatID == catID {
			delete(db.photos, id)
		}
	}
}
