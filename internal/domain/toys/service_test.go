package toys

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"cat-collector/internal/platform/apperrors"
)

type testRepo struct {
	byID map[string]Toy
}

func (r *testRepo) Create(_ context.Context, t Toy) error { r.byID[t.ID] = t; return nil }
func (r *testRepo) Update(_ context.Context, t Toy) error { r.byID[t.ID] = t; return nil }
func (r *testRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Toy, error) {
	t, ok := r.byID[id]
	if !ok {
		return Toy{}, apperrors.ErrNotFound
	}
	return t, nil
}

func (r *testRepo) List(_ context.Context) ([]Toy, error) {
	out := make([]Toy, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func newTestService() *Service {
	svc := NewService(&testRepo{byID: map[string]Toy{}})
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { tick = tick.Add(time.Second); return tick }
	return svc
}

func TestCreate_RequiresNameAndColor(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Color: "red"}); err == nil {
		t.Fatal("expected validation error for missing name")
	}
	_, err := svc.Create(ctx, Input{Name: "Ball"})
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Field != "color" {
		t.Fatalf("expected color validation error, got %v", err)
	}
}

func TestListExcludingAndByIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ball, _ := svc.Create(ctx, Input{Name: "Ball", Color: "red"})
	mouse, _ := svc.Create(ctx, Input{Name: "Mouse", Color: "gray"})
	kite, _ := svc.Create(ctx, Input{Name: "Kite", Color: "blue"})

	rest, err := svc.ListExcluding(ctx, []string{mouse.ID})
	if err != nil {
		t.Fatalf("list excluding: %v", err)
	}
	if len(rest) != 2 || rest[0].ID != ball.ID || rest[1].ID != kite.ID {
		t.Fatalf("unexpected excluding result %+v", rest)
	}

	owned, err := svc.ListByIDs(ctx, []string{kite.ID, ball.ID})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(owned) != 2 || owned[0].ID != ball.ID {
		t.Fatalf("unexpected by-ids result %+v", owned)
	}

	none, _ := svc.ListByIDs(ctx, nil)
	if len(none) != 0 {
		t.Fatalf("expected empty, got %+v", none)
	}
}

func TestUpdateDelete_MissingToy(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Update(ctx, "nope", Input{Name: "x", Color: "y"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete(ctx, "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
