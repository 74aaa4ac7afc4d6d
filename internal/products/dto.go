package product

import (
	"time"

	"github.com/emberwick/storefront-api/pkg/db/models"
	"github.com/emberwick/storefront-api/pkg/types"
	"github.com/google/uuid"
)

// ProductDTO is the back-office representation of a product, inactive ones included.
type ProductDTO struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	ScentCategory string      `json:"scent_category"`
	Price         types.Money `json:"price"`
	Popularity    int         `json:"popularity"`
	Description   string      `json:"description"`
	ScentNotes    string      `json:"scent_notes"`
	BurnTime      string      `json:"burn_time"`
	Ingredients   string      `json:"ingredients"`
	ImageURL      string      `json:"image_url"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ProductListResult is one page of the admin listing.
type ProductListResult struct {
	Items      []ProductDTO `json:"items"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// ImageUploadResult carries the public URL of a stored product image.
type ImageUploadResult struct {
	URL string `json:"url"`
}

func mapProductDTO(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		ScentCategory: p.ScentCategory,
		Price:         types.NewMoney(p.Price),
		Popularity:    p.Popularity,
		Description:   p.Description,
		ScentNotes:    p.ScentNotes,
		BurnTime:      p.BurnTime,
		Ingredients:   p.Ingredients,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
