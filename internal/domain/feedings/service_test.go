package feedings

import (
	"context"
	"testing"
	"time"

	"cat-collector/internal/platform/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items []Feeding
}

func (r *memRepo) Create(_ context.Context, f Feeding) error {
	r.items = append(r.items, f)
	return nil
}

func (r *memRepo) ListByCat(_ context.Context, catID string) ([]Feeding, error) {
	out := make([]Feeding, 0)
	for _, f := range r.items {
		if f.CatID == catID {
			out = append(out, f)
		}
	}
	return out, nil
}

type ownerGate struct{}

func (ownerGate) AuthorizeCat(_ context.Context, _ string, userID string) error {
	if userID != "owner" {
		return apperrors.ErrForbidden
	}
	return nil
}

func TestParseMeal(t *testing.T) {
	for _, m := range Meals() {
		got, err := ParseMeal(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	for _, raw := range []string{"", "X", "b", " l ", "D ", "Dinner"} {
		_, err := ParseMeal(raw)
		ve, ok := apperrors.AsValidation(err)
		require.True(t, ok, "meal %q should be rejected", raw)
		assert.Equal(t, "meal", ve.Field)
	}
}

func TestRecord_InvalidInputPersistsNothing(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, ownerGate{})
	ctx := context.Background()

	_, err := svc.Record(ctx, "owner", "cat-1", "2024-13-40", "B")
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "date", ve.Field)

	for _, meal := range []string{"Z", "", "b", " l "} {
		_, err = svc.Record(ctx, "owner", "cat-1", "2024-01-01", meal)
		_, ok = apperrors.AsValidation(err)
		assert.True(t, ok, "meal %q", meal)
	}

	assert.Empty(t, repo.items)
}

func TestRecord_ForeignCat(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, ownerGate{})

	_, err := svc.Record(context.Background(), "stranger", "cat-1", "2024-01-01", "B")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Empty(t, repo.items)
}

func TestRecordAndList_NewestFirst(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, ownerGate{})
	ctx := context.Background()

	tick := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { tick = tick.Add(time.Second); return tick }

	_, err := svc.Record(ctx, "owner", "cat-1", "2024-01-01", "B")
	require.NoError(t, err)
	_, err = svc.Record(ctx, "owner", "cat-1", "2024-03-01", "")
	require.NoError(t, err)
	_, err = svc.Record(ctx, "owner", "cat-1", "2024-01-01", "L")
	require.NoError(t, err)

	got, err := svc.ListByCat(ctx, "cat-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Breakfast on 2024-03-01", got[0].String())
	assert.Equal(t, "Lunch on 2024-01-01", got[1].String())
	assert.Equal(t, "Breakfast on 2024-01-01", got[2].String())
}

func TestMealDisplay(t *testing.T) {
	labels := make([]string, 0, 3)
	for _, m := range Meals() {
		labels = append(labels, m.Display())
	}
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, labels)
	assert.False(t, Meal("Q").Valid())
}
