package catalog

import (
	"github.com/emberwick/storefront-api/pkg/enums"
	"github.com/emberwick/storefront-api/pkg/types"
)

// AllCategories is the category sentinel that disables filtering.
const AllCategories = "All"

// DefaultCategories is served when the category source is unavailable or empty.
var DefaultCategories = []string{"Floral", "Citrus", "Woody", "Fresh", "Sweet"}

// Product is the fully typed catalog entry every storefront view is derived from.
type Product struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	ScentCategory string      `json:"scent_category"`
	Price         types.Money `json:"price"`
	Popularity    int         `json:"popularity"`
	CreatedAt     string      `json:"created_at"`
	Description   string      `json:"description"`
	ScentNotes    string      `json:"scent_notes"`
	BurnTime      string      `json:"burn_time"`
	Ingredients   string      `json:"ingredients"`
	ImageURL      string      `json:"image_url"`
}

// FilterState is the shopper's current category and ordering selection.
type FilterState struct {
	SelectedCategory string
	SortKey          enums.SortKey
}

// View is the catalog page payload: the derived product list plus filter UI inputs.
type View struct {
	Products   []Product     `json:"products"`
	Categories []string      `json:"categories"`
	Selected   string        `json:"selected_category"`
	Sort       enums.SortKey `json:"sort"`
}
