package product

import (
	"testing"
	"time"

	"github.com/emberwick/storefront-api/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name, price string, createdAt time.Time, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.New(),
		Name:          name,
		ScentCategory: "Floral",
		Price:         decimal.RequireFromString(price),
		Popularity:    10,
		IsActive:      active,
		CreatedAt:     createdAt.UTC(),
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
