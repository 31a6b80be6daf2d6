package memory

import (
	"context"
	"sort"

	"cat-collector/internal/domain/associations"
	"cat-collector/internal/platform/apperrors"
)

type associationRepo struct {
	db *DB
}

func NewAssociationRepo(db *DB) associations.Repository {
	return &associationRepo{db: db}
}

// Add respeta las FKs del esquema SQL: gato y juguete deben existir.
func (r *associationRepo) Add(ctx context.Context, l associations.Link) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.cats[l.CatID]; !ok {
		return apperrors.ErrNotFound
	}
	if _, ok := r.db.toys[l.ToyID]; !ok {
		return apperrors.ErrNotFound
	}

	k := linkKey{catID: l.CatID, toyID: l.ToyID}
	if _, exists := r.db.links[k]; exists {
		return nil
	}
	r.db.linkSeqGen++
	r.db.links[k] = linkRow{link: l, seq: r.db.linkSeqGen}
	return nil
}

func (r *associationRepo) Remove(ctx context.Context, catID, toyID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.links, linkKey{catID: catID, toyID: toyID})
	return nil
}

func (r *associationRepo) ListFor(ctx context.Context, catID string) ([]string, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rows := make([]linkRow, 0)
	for k, row := range r.db.links {
		if k.catID == catID {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.link.ToyID)
	}
	return out, nil
}
