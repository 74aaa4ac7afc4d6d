package catalog

import (
	"reflect"
	"testing"

	"github.com/emberwick/storefront-api/pkg/enums"
	"github.com/emberwick/storefront-api/pkg/types"
	"github.com/shopspring/decimal"
)

func product(id, category, price string, popularity int, createdAt string) Product {
	return Product{
		ID:            id,
		Name:          "Candle " + id,
		ScentCategory: category,
		Price:         types.NewMoney(decimal.RequireFromString(price)),
		Popularity:    popularity,
		CreatedAt:     createdAt,
	}
}

func ids(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func sampleCatalog() []Product {
	return []Product{
		product("a", "Floral", "24.00", 5, "2026-01-10T10:00:00Z"),
		product("b", "Citrus", "18.50", 9, "2026-02-01T10:00:00Z"),
		product("c", "Floral", "32.00", 5, "not-a-date"),
		product("d", "Woody", "28.00", 1, ""),
		product("e", "Floral", "24.00", 7, "2026-03-05T08:30:00Z"),
	}
}

func TestDeriveViewFiltersByExactCategory(t *testing.T) {
	catalog := sampleCatalog()

	got := DeriveView(catalog, FilterState{SelectedCategory: "Floral", SortKey: enums.SortKeyPopularity})
	for _, p := range got {
		if p.ScentCategory != "Floral" {
			t.Fatalf("unexpected category %q in Floral view", p.ScentCategory)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 floral products, got %v", ids(got))
	}

	all := DeriveView(catalog, FilterState{SelectedCategory: AllCategories})
	if len(all) != len(catalog) {
		t.Fatalf("expected All to keep %d products, got %d", len(catalog), len(all))
	}

	if got := DeriveView(catalog, FilterState{SelectedCategory: "floral"}); len(got) != 0 {
		t.Fatalf("category match must be case-sensitive, got %v", ids(got))
	}
}

func TestDeriveViewEmptyResultsAreNotNil(t *testing.T) {
	if got := DeriveView(nil, FilterState{SelectedCategory: AllCategories}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for empty catalog, got %#v", got)
	}
	if got := DeriveView(sampleCatalog(), FilterState{SelectedCategory: "Smoky"}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice for unmatched category, got %#v", got)
	}
}

func TestDeriveViewPriceOrdering(t *testing.T) {
	catalog := []Product{
		product("p30", "Fresh", "30", 0, ""),
		product("p10", "Fresh", "10", 0, ""),
		product("p20", "Fresh", "20", 0, ""),
	}

	asc := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyPriceAsc})
	if want := []string{"p10", "p20", "p30"}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("price-asc = %v, want %v", ids(asc), want)
	}

	desc := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyPriceDesc})
	if want := []string{"p30", "p20", "p10"}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("price-desc = %v, want %v", ids(desc), want)
	}

	if want := []string{"p30", "p10", "p20"}; !reflect.DeepEqual(ids(catalog), want) {
		t.Fatalf("input catalog was reordered: %v", ids(catalog))
	}
}

func TestDeriveViewSortIsStable(t *testing.T) {
	catalog := sampleCatalog()

	byPrice := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyPriceAsc})
	// a and e tie at 24.00 and must keep catalog order.
	if want := []string{"b", "a", "e", "d", "c"}; !reflect.DeepEqual(ids(byPrice), want) {
		t.Fatalf("price-asc = %v, want %v", ids(byPrice), want)
	}

	byPopularity := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyPopularity})
	// a and c tie at 5.
	if want := []string{"b", "e", "a", "c", "d"}; !reflect.DeepEqual(ids(byPopularity), want) {
		t.Fatalf("popularity = %v, want %v", ids(byPopularity), want)
	}
}

func TestDeriveViewNewestSinksUnparseableDates(t *testing.T) {
	got := DeriveView(sampleCatalog(), FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyNewest})
	if want := []string{"e", "b", "a", "c", "d"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("newest = %v, want %v", ids(got), want)
	}
}

func TestDeriveViewUnknownSortFallsBackToPopularity(t *testing.T) {
	catalog := sampleCatalog()
	fallback := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: "alphabetical"})
	popularity := DeriveView(catalog, FilterState{SelectedCategory: AllCategories, SortKey: enums.SortKeyPopularity})
	if !reflect.DeepEqual(ids(fallback), ids(popularity)) {
		t.Fatalf("unknown sort = %v, want popularity order %v", ids(fallback), ids(popularity))
	}
}

func TestDeriveViewIsIdempotent(t *testing.T) {
	catalog := sampleCatalog()
	for _, key := range []enums.SortKey{enums.SortKeyPopularity, enums.SortKeyPriceAsc, enums.SortKeyPriceDesc, enums.SortKeyNewest} {
		for _, category := range []string{AllCategories, "Floral", "Citrus", "Smoky"} {
			state := FilterState{SelectedCategory: category, SortKey: key}
			once := DeriveView(catalog, state)
			twice := DeriveView(once, state)
			if !reflect.DeepEqual(ids(once), ids(twice)) {
				t.Fatalf("not idempotent for %s/%s: %v vs %v", category, key, ids(once), ids(twice))
			}
		}
	}
}

func TestParseSortKeyAndNormalizeCategory(t *testing.T) {
	cases := map[string]enums.SortKey{
		"":           enums.SortKeyPopularity,
		"price-asc":  enums.SortKeyPriceAsc,
		" newest ":   enums.SortKeyNewest,
		"PRICE-DESC": enums.SortKeyPopularity,
	}
	for raw, want := range cases {
		if got := ParseSortKey(raw); got != want {
			t.Fatalf("ParseSortKey(%q) = %q, want %q", raw, got, want)
		}
	}

	if NormalizeCategory("  ") != AllCategories {
		t.Fatal("blank category should select All")
	}
	if NormalizeCategory(" Woody ") != "Woody" {
		t.Fatal("category should be trimmed")
	}
}
