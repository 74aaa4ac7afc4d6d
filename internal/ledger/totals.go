package ledger

import (
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/pkg/types"
	"github.com/shopspring/decimal"
)

// Item is a ledger line joined with its current catalog product.
type Item struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal types.Money     `json:"line_total"`
}

// Rehydrate joins lines to products by id, keeping ledger order. Lines whose
// product is no longer in the catalog are dropped.
func Rehydrate(lines []Line, products []catalog.Product) []Item {
	byID := catalog.Index(products)
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		p, ok := byID[line.ID]
		if !ok {
			continue
		}
		items = append(items, Item{
			Product:   p,
			Quantity:  line.Quantity,
			LineTotal: types.NewMoney(p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))),
		})
	}
	return items
}

// ShippingPolicy is a flat fee waived when the subtotal exceeds FreeThreshold.
type ShippingPolicy struct {
	Fee           decimal.Decimal
	FreeThreshold decimal.Decimal
}

// Totals are derived on every read and never persisted.
type Totals struct {
	ItemCount int         `json:"item_count"`
	Subtotal  types.Money `json:"subtotal"`
	Shipping  types.Money `json:"shipping"`
	Total     types.Money `json:"total"`
}

// ComputeTotals sums price x quantity. Shipping is zero for an empty cart or when the
// subtotal is strictly above the threshold.
func ComputeTotals(items []Item, policy ShippingPolicy) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		count += item.Quantity
	}

	shipping := policy.Fee
	if len(items) == 0 || subtotal.GreaterThan(policy.FreeThreshold) {
		shipping = decimal.Zero
	}

	return Totals{
		ItemCount: count,
		Subtotal:  types.NewMoney(subtotal),
		Shipping:  types.NewMoney(shipping),
		Total:     types.NewMoney(subtotal.Add(shipping)),
	}
}
