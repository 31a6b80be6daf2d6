package feedings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cat-collector/internal/platform/apperrors"
	"cat-collector/internal/ports/access"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	gate access.CatGate
	now  func() time.Time
}

func NewService(repo Repository, gate access.CatGate) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		now:  time.Now,
	}
}

// ParseMeal acepta solo el código exacto de una de las opciones (B, L, D).
func ParseMeal(raw string) (Meal, error) {
	if raw == "" {
		return "", apperrors.Invalid("meal", "this field is required")
	}
	m := Meal(raw)
	if !m.Valid() {
		return "", apperrors.Invalid("meal", fmt.Sprintf("select a valid choice; %q is not one of the available choices", raw))
	}
	return m, nil
}

func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperrors.Invalid("date", "this field is required")
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.Invalid("date", "enter a valid date (YYYY-MM-DD)")
	}
	return d, nil
}

// Record valida y persiste una comida para catID.
// Si la validación falla no se crea nada.
func (s *Service) Record(ctx context.Context, userID, catID, date, meal string) (Feeding, error) {
	if err := s.gate.AuthorizeCat(ctx, catID, userID); err != nil {
		return Feeding{}, err
	}

	d, err := ParseDate(date)
	if err != nil {
		return Feeding{}, err
	}
	m, err := ParseMeal(meal)
	if err != nil {
		return Feeding{}, err
	}

	f := Feeding{
		ID:        uuid.NewString(),
		CatID:     catID,
		Date:      d,
		Meal:      m,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, fmt.Errorf("record feeding: %w", err)
	}
	return f, nil
}

// ListByCat no autoriza: el llamador ya pasó por el gate del gato.
func (s *Service) ListByCat(ctx context.Context, catID string) ([]Feeding, error) {
	items, err := s.repo.ListByCat(ctx, catID)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(items)
	return items, nil
}

// SortNewestFirst es el orden canónico de feedings.
func SortNewestFirst(items []Feeding) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
