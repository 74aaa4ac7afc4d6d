package wishlist

import (
	"context"
	"testing"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/ledger"
	"github.com/emberwick/storefront-api/pkg/enums"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	products []catalog.Product
}

func (s stubCatalog) Catalog(context.Context) ([]catalog.Product, error) {
	return s.products, nil
}

func newWishlist(t *testing.T, ids ...string) (Service, *ledger.MemorySlots) {
	t.Helper()
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, catalog.Product{ID: id, Name: "Candle " + id})
	}
	slots := ledger.NewMemorySlots()
	svc, err := NewService(ServiceParams{
		Catalog: stubCatalog{products: products},
		Ledgers: ledger.NewFactory(slots, nil),
	})
	require.NoError(t, err)
	return svc, slots
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, slots := newWishlist(t, "A", "B")

	_, err := svc.Add(ctx, "s1", "A")
	require.NoError(t, err)
	view, err := svc.Add(ctx, "s1", "A")
	require.NoError(t, err)
	require.Equal(t, 1, view.Count)

	raw, ok, err := slots.Slot("s1", enums.LedgerKindWishlist).Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []ledger.Line{{ID: "A", Quantity: 1}}, ledger.Decode(raw))
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWishlist(t, "A", "B", "C")

	for _, id := range []string{"C", "A", "B"} {
		_, err := svc.Add(ctx, "s1", id)
		require.NoError(t, err)
	}
	view, err := svc.Remove(ctx, "s1", "A")
	require.NoError(t, err)
	require.Len(t, view.Products, 2)
	require.Equal(t, "C", view.Products[0].ID)
	require.Equal(t, "B", view.Products[1].ID)
}

func TestWishlistIsolatedFromCart(t *testing.T) {
	ctx := context.Background()
	svc, slots := newWishlist(t, "A")

	_, err := svc.Add(ctx, "s1", "A")
	require.NoError(t, err)

	_, ok, err := slots.Slot("s1", enums.LedgerKindCart).Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc, _ := newWishlist(t, "A")

	_, err := svc.Add(context.Background(), "s1", "missing")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestWishlistClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newWishlist(t, "A")

	_, err := svc.Add(ctx, "s1", "A")
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "s1"))

	view, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	require.Zero(t, view.Count)
	require.NotNil(t, view.Products)
}
