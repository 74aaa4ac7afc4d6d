package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a candle listed in the storefront catalog.
type Product struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name          string          `gorm:"column:name;not null"`
	ScentCategory string          `gorm:"column:scent_category;not null;index:idx_products_scent_category"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Popularity    int             `gorm:"column:popularity;not null;default:0"`
	Description   string          `gorm:"column:description;not null;default:''"`
	ScentNotes    string          `gorm:"column:scent_notes;not null;default:''"`
	BurnTime      string          `gorm:"column:burn_time;not null;default:''"`
	Ingredients   string          `gorm:"column:ingredients;not null;default:''"`
	ImageURL      string          `gorm:"column:image_url;not null;default:''"`
	IsActive      bool            `gorm:"column:is_active;not null;index:idx_products_is_active_created_at,priority:1"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime;index:idx_products_is_active_created_at,priority:2"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }

// BeforeCreate assigns the primary key client-side so every dialect behaves the same.
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
