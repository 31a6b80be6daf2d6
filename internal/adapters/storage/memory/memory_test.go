package memory

import (
	"context"
	"testing"
	"time"

	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/associations"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seed(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, NewCatRepo(db).Create(ctx, cats.Cat{ID: "c1", OwnerUserID: "u1", Name: "Tom", CreatedAt: t0}))
	require.NoError(t, NewToyRepo(db).Create(ctx, toys.Toy{ID: "t1", Name: "Ball", Color: "red", CreatedAt: t0}))
	require.NoError(t, NewToyRepo(db).Create(ctx, toys.Toy{ID: "t2", Name: "Mouse", Color: "gray", CreatedAt: t0.Add(time.Second)}))
}

func TestDeleteCat_Cascades(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	seed(t, db)

	links := NewAssociationRepo(db)
	feeds := NewFeedingRepo(db)
	pics := NewPhotoRepo(db)

	require.NoError(t, links.Add(ctx, associations.Link{CatID: "c1", ToyID: "t1"}))
	require.NoError(t, feeds.Create(ctx, feedings.Feeding{ID: "f1", CatID: "c1", Date: t0, Meal: feedings.MealLunch}))
	require.NoError(t, pics.Create(ctx, photos.Photo{ID: "p1", CatID: "c1", URL: "u", Key: "k"}))

	require.NoError(t, NewCatRepo(db).Delete(ctx, "c1"))

	fs, err := feeds.ListByCat(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, fs)

	ps, err := pics.ListByCat(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, ps)

	ids, err := links.ListFor(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Los juguetes sobreviven al gato.
	_, err = NewToyRepo(db).GetByID(ctx, "t1")
	assert.NoError(t, err)
}

func TestAssociation_IdempotentAndOrdered(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	seed(t, db)
	links := NewAssociationRepo(db)

	require.NoError(t, links.Add(ctx, associations.Link{CatID: "c1", ToyID: "t2"}))
	require.NoError(t, links.Add(ctx, associations.Link{CatID: "c1", ToyID: "t1"}))
	require.NoError(t, links.Add(ctx, associations.Link{CatID: "c1", ToyID: "t2"}))

	ids, err := links.ListFor(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t2", "t1"}, ids)

	require.NoError(t, links.Remove(ctx, "c1", "t2"))
	require.NoError(t, links.Remove(ctx, "c1", "t2"))

	ids, err = links.ListFor(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, ids)
}

func TestAssociation_RequiresExistingRows(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	seed(t, db)

	err := NewAssociationRepo(db).Add(ctx, associations.Link{CatID: "c1", ToyID: "missing"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteToy_UnlinksOnly(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	seed(t, db)
	links := NewAssociationRepo(db)

	require.NoError(t, links.Add(ctx, associations.Link{CatID: "c1", ToyID: "t1"}))
	require.NoError(t, NewToyRepo(db).Delete(ctx, "t1"))

	ids, err := links.ListFor(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = NewCatRepo(db).GetByID(ctx, "c1")
	assert.NoError(t, err)
}

func TestCats_ListByOwnerScoped(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	repo := NewCatRepo(db)

	require.NoError(t, repo.Create(ctx, cats.Cat{ID: "a", OwnerUserID: "u1", CreatedAt: t0.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, cats.Cat{ID: "b", OwnerUserID: "u2", CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, cats.Cat{ID: "c", OwnerUserID: "u1", CreatedAt: t0}))

	got, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestFeedings_NewestFirst(t *testing.T) {
	ctx := context.Background()
	db := NewDB()
	seed(t, db)
	repo := NewFeedingRepo(db)

	require.NoError(t, repo.Create(ctx, feedings.Feeding{ID: "old", CatID: "c1", Date: t0, Meal: feedings.MealBreakfast}))
	require.NoError(t, repo.Create(ctx, feedings.Feeding{ID: "new", CatID: "c1", Date: t0.AddDate(0, 0, 1), Meal: feedings.MealDinner}))

	got, err := repo.ListByCat(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
}

func TestUsers_UsernameUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewDB())

	require.NoError(t, repo.Create(ctx, accounts.User{ID: "u1", Username: "ana"}))
	err := repo.Create(ctx, accounts.User{ID: "u2", Username: "ana"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	u, err := repo.GetByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}
