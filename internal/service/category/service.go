// Package category manages demand categories.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sectorflow/demand-service/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clock interface {
	Now() time.Time
}

// Input holds the editable fields of a category.
type Input struct {
	Name        string
	Description string
	Color       string
}

func (i Input) validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "invalid name"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "invalid description"})
	}
	if strings.TrimSpace(i.Color) == "" {
		errs = append(errs, domain.FieldError{Field: "color", Message: "invalid color"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Service provides category management operations.
type Service struct {
	categories categoryRepo
	clock      clock
	log        *slog.Logger
}

// NewService creates a new category service.
func NewService(log *slog.Logger, categories categoryRepo, clk clock) *Service {
	return &Service{
		categories: categories,
		clock:      clk,
		log:        log.With("service", "category"),
	}
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// Get returns one category.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// Create adds a category. Names are unique.
func (s *Service) Create(ctx context.Context, input Input) (*domain.Category, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("category %q: %w", input.Name, domain.ErrAlreadyExists)
	}

	now := s.clock.Now()
	c := &domain.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID.String()),
		slog.String("name", c.Name),
	)
	return c, nil
}

// Update replaces the fields of a category.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input Input) (*domain.Category, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	c := &domain.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		UpdatedAt:   s.clock.Now(),
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category. Demands keep their reference to it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	return nil
}
