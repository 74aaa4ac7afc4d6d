package categories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/emberwick/storefront-api/pkg/db"
	"github.com/emberwick/storefront-api/pkg/db/models"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const nameConstraint = "categories_name_key"

// CategoryDTO is the admin view of a category.
type CategoryDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateInput holds the payload to create a category. IsActive defaults to true.
type CreateInput struct {
	Name        string
	Description string
	IsActive    *bool
	SortOrder   int
}

// UpdateInput holds optional category changes.
type UpdateInput struct {
	Name        *string
	Description *string
	IsActive    *bool
	SortOrder   *int
}

type categoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service exposes back-office category management.
type Service interface {
	List(ctx context.Context) ([]CategoryDTO, error)
	Create(ctx context.Context, input CreateInput) (*CategoryDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*CategoryDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo categoryStore
}

func NewService(repo categoryStore) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*CategoryDTO, error) {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	category := &models.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		IsActive:    active,
		SortOrder:   input.SortOrder,
	}
	if category.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, mapWriteError(err, "create category")
	}
	dto := toDTO(category)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*CategoryDTO, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load category")
	}

	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		category.Description = strings.TrimSpace(*input.Description)
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if category.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, mapWriteError(err, "update category")
	}
	dto := toDTO(category)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete category")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}
	return nil
}

func mapWriteError(err error, action string) error {
	if db.IsUniqueViolation(err, nameConstraint) {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "category name already exists")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
}

func toDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
