package categories

import (
	"context"

	"github.com/emberwick/storefront-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists scent categories.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FetchActiveCategoryNames lists active labels in display order.
func (r *Repository) FetchActiveCategoryNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Order("name ASC").
		Pluck("name", &names).
		Error
	return names, err
}

func (r *Repository) List(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&rows).
		Error
	return rows, err
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *Repository) Update(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete reports whether a row was removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	return res.RowsAffected > 0, res.Error
}
