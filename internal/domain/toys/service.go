package toys

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cat-collector/internal/platform/apperrors"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Name  string
	Color string
}

func (in Input) normalize() (Input, error) {
	out := Input{
		Name:  strings.TrimSpace(in.Name),
		Color: strings.TrimSpace(in.Color),
	}
	switch {
	case out.Name == "":
		return Input{}, apperrors.Invalid("name", "this field is required")
	case utf8.RuneCountInString(out.Name) > MaxNameLen:
		return Input{}, apperrors.Invalid("name", fmt.Sprintf("at most %d characters", MaxNameLen))
	case out.Color == "":
		return Input{}, apperrors.Invalid("color", "this field is required")
	case utf8.RuneCountInString(out.Color) > MaxColorLen:
		return Input{}, apperrors.Invalid("color", fmt.Sprintf("at most %d characters", MaxColorLen))
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Toy, error) {
	in, err := in.normalize()
	if err != nil {
		return Toy{}, err
	}
	t := Toy{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Toy{}, fmt.Errorf("create toy: %w", err)
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Toy{}, apperrors.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Toy, error) {
	return s.repo.List(ctx)
}

// ListExcluding devuelve los juguetes cuyo ID no está en ids
// (en el detalle del gato: "juguetes que todavía no tiene").
func (s *Service) ListExcluding(ctx context.Context, ids []string) ([]Toy, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}

	out := make([]Toy, 0, len(all))
	for _, t := range all {
		if _, ok := skip[t.ID]; ok {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// ListByIDs conserva el orden de List.
func (s *Service) ListByIDs(ctx context.Context, ids []string) ([]Toy, error) {
	if len(ids) == 0 {
		return []Toy{}, nil
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]Toy, 0, len(ids))
	for _, t := range all {
		if _, ok := want[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Toy, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Toy{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return Toy{}, err
	}
	current.Name = in.Name
	current.Color = in.Color

	if err := s.repo.Update(ctx, current); err != nil {
		return Toy{}, fmt.Errorf("update toy: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete toy: %w", err)
	}
	return nil
}
