package cats

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cat-collector/internal/platform/apperrors"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Cat
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Cat{}}
}

func (r *testRepo) Create(_ context.Context, c Cat) error {
	if _, ok := r.byID[c.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) Update(_ context.Context, c Cat) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Cat, error) {
	c, ok := r.byID[id]
	if !ok {
		return Cat{}, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *testRepo) ListByOwner(_ context.Context, owner string) ([]Cat, error) {
	out := make([]Cat, 0)
	for _, c := range r.byID {
		if c.OwnerUserID == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestCreate_ValidatesInput(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"missing name", Input{Breed: "tabby"}, "name"},
		{"missing breed", Input{Name: "Lolo"}, "breed"},
		{"long name", Input{Name: strings.Repeat("a", MaxNameLen+1), Breed: "tabby"}, "name"},
		{"long description", Input{Name: "Lolo", Breed: "tabby", Description: strings.Repeat("d", MaxDescriptionLen+1)}, "description"},
		{"negative age", Input{Name: "Lolo", Breed: "tabby", Age: -1}, "age"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, "owner", tc.in)
		ve, ok := apperrors.AsValidation(err)
		if !ok {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: field = %q, want %q", tc.name, ve.Field, tc.field)
		}
	}

	if _, err := svc.Create(ctx, "", Input{Name: "Lolo", Breed: "tabby"}); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated without owner, got %v", err)
	}
}

func TestAuthorize_OwnerOnly(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	c, err := svc.Create(ctx, "owner", Input{Name: " Lolo ", Breed: "tabby", Age: 3})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Name != "Lolo" {
		t.Fatalf("name should be trimmed, got %q", c.Name)
	}

	if _, err := svc.Authorize(ctx, c.ID, "owner"); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	if _, err := svc.Authorize(ctx, c.ID, "stranger"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := svc.Authorize(ctx, "missing", "owner"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.AuthorizeCat(ctx, c.ID, ""); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestUpdateDelete_RespectOwnership(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	c, _ := svc.Create(ctx, "owner", Input{Name: "Lolo", Breed: "tabby"})

	if _, err := svc.Update(ctx, c.ID, "stranger", Input{Name: "X", Breed: "Y"}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden update, got %v", err)
	}
	if err := svc.Delete(ctx, c.ID, "stranger"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden delete, got %v", err)
	}

	updated, err := svc.Update(ctx, c.ID, "owner", Input{Name: "Lola", Breed: "tabby", Age: 4})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Lola" || updated.Age != 4 || updated.OwnerUserID != "owner" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	if err := svc.Delete(ctx, c.ID, "owner"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.byID[c.ID]; ok {
		t.Fatal("cat should be gone")
	}
}

func TestListByOwner_Scoped(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, _ = svc.Create(ctx, "a", Input{Name: "One", Breed: "x"})
	_, _ = svc.Create(ctx, "b", Input{Name: "Two", Breed: "x"})

	got, err := svc.ListByOwner(ctx, "a")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "One" {
		t.Fatalf("expected only a's cat, got %+v", got)
	}
}
