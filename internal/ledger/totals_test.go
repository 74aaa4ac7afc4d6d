package ledger

import (
	"testing"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func priced(id, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "Candle " + id, Price: types.NewMoney(decimal.RequireFromString(price))}
}

func defaultPolicy() ShippingPolicy {
	return ShippingPolicy{
		Fee:           decimal.RequireFromString("5.99"),
		FreeThreshold: decimal.NewFromInt(50),
	}
}

func TestComputeTotalsExample(t *testing.T) {
	products := []catalog.Product{priced("A", "28"), priced("B", "32")}
	items := Rehydrate([]Line{{ID: "A", Quantity: 1}, {ID: "B", Quantity: 2}}, products)

	totals := ComputeTotals(items, defaultPolicy())
	require.Equal(t, "92.00", totals.Subtotal.String())
	require.Equal(t, "0.00", totals.Shipping.String())
	require.Equal(t, "92.00", totals.Total.String())
	require.Equal(t, 3, totals.ItemCount)
	require.Equal(t, "64.00", items[1].LineTotal.String())
}

func TestComputeTotalsChargesShippingAtOrBelowThreshold(t *testing.T) {
	items := Rehydrate([]Line{{ID: "A", Quantity: 2}}, []catalog.Product{priced("A", "25")})

	totals := ComputeTotals(items, defaultPolicy())
	require.Equal(t, "50.00", totals.Subtotal.String())
	require.Equal(t, "5.99", totals.Shipping.String())
	require.Equal(t, "55.99", totals.Total.String())

	items = Rehydrate([]Line{{ID: "A", Quantity: 1}}, []catalog.Product{priced("A", "50.01")})
	require.Equal(t, "0.00", ComputeTotals(items, defaultPolicy()).Shipping.String())
}

func TestComputeTotalsEmptyCartShipsFree(t *testing.T) {
	totals := ComputeTotals(nil, defaultPolicy())
	require.Equal(t, "0.00", totals.Subtotal.String())
	require.Equal(t, "0.00", totals.Shipping.String())
	require.Equal(t, "0.00", totals.Total.String())
	require.Zero(t, totals.ItemCount)
}

func TestComputeTotalsAvoidsFloatDrift(t *testing.T) {
	items := Rehydrate([]Line{{ID: "A", Quantity: 3}}, []catalog.Product{priced("A", "0.10")})
	totals := ComputeTotals(items, defaultPolicy())
	require.Equal(t, "0.30", totals.Subtotal.String())
	require.Equal(t, "6.29", totals.Total.String())
}

func TestRehydrateDropsVanishedProducts(t *testing.T) {
	items := Rehydrate(
		[]Line{{ID: "gone", Quantity: 4}, {ID: "B", Quantity: 1}, {ID: "A", Quantity: 2}},
		[]catalog.Product{priced("A", "10"), priced("B", "12")},
	)
	require.Len(t, items, 2)
	require.Equal(t, "B", items[0].Product.ID)
	require.Equal(t, "A", items[1].Product.ID)
	require.Equal(t, 2, items[1].Quantity)

	require.NotNil(t, Rehydrate(nil, nil))
}
