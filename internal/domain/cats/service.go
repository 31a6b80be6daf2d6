package cats

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

// Input son los campos editables del formulario de gato.
type Input struct {
	Name        string
	Breed       string
	Description string
	Age         int
}

func (in Input) normalize() (Input, error) {
	out := Input{
		Name:        strings.TrimSpace(in.Name),
		Breed:       strings.TrimSpace(in.Breed),
		Description: strings.TrimSpace(in.Description),
		Age:         in.Age,
	}

	switch {
	case out.Name == "":
		return Input{}, apperrors.Invalid("name", "this field is required")
	case utf8.RuneCountInString(out.Name) > MaxNameLen:
		return Input{}, apperrors.Invalid("name", fmt.Sprintf("at most %d characters", MaxNameLen))
	case out.Breed == "":
		return Input{}, apperrors.Invalid("breed", "this field is required")
	case utf8.RuneCountInString(out.Breed) > MaxBreedLen:
		return Input{}, apperrors.Invalid("breed", fmt.Sprintf("at most %d characters", MaxBreedLen))
	case utf8.RuneCountInString(out.Description) > MaxDescriptionLen:
		return Input{}, apperrors.Invalid("description", fmt.Sprintf("at most %d characters", MaxDescriptionLen))
	case out.Age < 0:
		return Input{}, apperrors.Invalid("age", "must be zero or greater")
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in Input) (Cat, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Cat{}, apperrors.ErrUnauthenticated
	}
	in, err := in.normalize()
	if err != nil {
		return Cat{}, err
	}

	now := s.now().UTC()
	c := Cat{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        in.Name,
		Breed:       in.Breed,
		Description: in.Description,
		Age:         in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, fmt.Errorf("create cat: %w", err)
	}
	return c, nil
}

// Get devuelve el gato solo si pertenece a userID.
func (s *Service) Get(ctx context.Context, catID, userID string) (Cat, error) {
	return s.Authorize(ctx, catID, userID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Update(ctx context.Context, catID, userID string, in Input) (Cat, error) {
	current, err := s.Authorize(ctx, catID, userID)
	if err != nil {
		return Cat{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return Cat{}, err
	}

	current.Name = in.Name
	current.Breed = in.Breed
	current.Description = in.Description
	current.Age = in.Age
	current.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		return Cat{}, fmt.Errorf("update cat: %w", err)
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, catID, userID string) error {
	if _, err := s.Authorize(ctx, catID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, catID); err != nil {
		return fmt.Errorf("delete cat: %w", err)
	}
	return nil
}
