package product

import (
	"context"
	"time"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/pkg/db/models"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/pagination"
	"github.com/emberwick/storefront-api/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository wires together all product-related persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FetchAllProducts returns every active product as catalog entries, oldest first with
// the id as tie-breaker so catalog order is stable across reads.
func (r *Repository) FetchAllProducts(ctx context.Context) ([]catalog.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToCatalogProduct(row))
	}
	return out, nil
}

// FindByID loads the product regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves every column of an existing product row.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product by ID and reports whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List pages through all products, newest first, for the back office.
func (r *Repository) List(ctx context.Context, params pagination.Params) ([]models.Product, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	query := r.db.WithContext(ctx).Model(&models.Product{})
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Product
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).
		Error; err != nil {
		return nil, "", err
	}

	rows, more := pagination.Trim(rows, params.Limit)
	next := ""
	if more && len(rows) > 0 {
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, next, nil
}

// ToCatalogProduct maps a row onto the storefront catalog shape.
func ToCatalogProduct(row models.Product) catalog.Product {
	return catalog.Product{
		ID:            row.ID.String(),
		Name:          row.Name,
		ScentCategory: row.ScentCategory,
		Price:         types.NewMoney(row.Price),
		Popularity:    row.Popularity,
		CreatedAt:     row.CreatedAt.UTC().Format(time.RFC3339),
		Description:   row.Description,
		ScentNotes:    row.ScentNotes,
		BurnTime:      row.BurnTime,
		Ingredients:   row.Ingredients,
		ImageURL:      row.ImageURL,
	}
}
