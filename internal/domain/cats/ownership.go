package cats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cat-collector/internal/platform/apperrors"
)

// Authorize es el gate de acceso: toda operación sobre un gato (salvo listar) pasa por aquí.
// - sin usuario => ErrUnauthenticated
// - gato inexistente => ErrNotFound
// - gato de otro dueño => ErrForbidden
func (s *Service) Authorize(ctx context.Context, catID, userID string) (Cat, error) {
	if strings.TrimSpace(userID) == "" {
		return Cat{}, apperrors.ErrUnauthenticated
	}
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return Cat{}, apperrors.ErrNotFound
	}

	c, err := s.repo.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Cat{}, apperrors.ErrNotFound
		}
		return Cat{}, fmt.Errorf("get cat: %w", err)
	}
	if c.OwnerUserID != userID {
		return Cat{}, fmt.Errorf("cat %s: %w", catID, apperrors.ErrForbidden)
	}
	return c, nil
}

// AuthorizeCat implementa access.CatGate.
func (s *Service) AuthorizeCat(ctx context.Context, catID, userID string) error {
	_, err := s.Authorize(ctx, catID, userID)
	return err
}
