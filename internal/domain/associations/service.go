package associations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/apperrors"
	"cat-collector/internal/ports/access"
)

// ToyLookup es lo único que necesitamos del módulo de juguetes.
type ToyLookup interface {
	Get(ctx context.Context, id string) (toys.Toy, error)
}

type Service struct {
	repo Repository
	gate access.CatGate
	toys ToyLookup
	now  func() time.Time
}

func NewService(repo Repository, gate access.CatGate, toyLookup ToyLookup) *Service {
	return &Service{
		repo: repo,
		gate: gate,
		toys: toyLookup,
		now:  time.Now,
	}
}

func (s *Service) authorize(ctx context.Context, userID, catID, toyID string) error {
	if err := s.gate.AuthorizeCat(ctx, catID, userID); err != nil {
		return err
	}
	if strings.TrimSpace(toyID) == "" {
		return apperrors.ErrNotFound
	}
	if _, err := s.toys.Get(ctx, toyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("toy %s: %w", toyID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("get toy: %w", err)
	}
	return nil
}

// Associate vincula toyID al gato de userID. Repetirlo no duplica el vínculo.
func (s *Service) Associate(ctx context.Context, userID, catID, toyID string) error {
	if err := s.authorize(ctx, userID, catID, toyID); err != nil {
		return err
	}
	l := Link{CatID: catID, ToyID: toyID, CreatedAt: s.now().UTC()}
	if err := s.repo.Add(ctx, l); err != nil {
		return fmt.Errorf("associate toy: %w", err)
	}
	return nil
}

// Disassociate quita el vínculo si existe. Un juguete desconocido o ya borrado
// no es error: no hay vínculo que quitar.
func (s *Service) Disassociate(ctx context.Context, userID, catID, toyID string) error {
	if err := s.gate.AuthorizeCat(ctx, catID, userID); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, catID, toyID); err != nil {
		return fmt.Errorf("disassociate toy: %w", err)
	}
	return nil
}

// ListToyIDs no autoriza: el llamador ya pasó por el gate del gato.
func (s *Service) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	return s.repo.ListFor(ctx, catID)
}
