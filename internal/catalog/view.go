package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/emberwick/storefront-api/pkg/enums"
)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// DeriveView filters catalog by state.SelectedCategory and orders the result by
// state.SortKey. Ordering is stable and the input slice is never modified.
func DeriveView(catalog []Product, state FilterState) []Product {
	out := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if state.SelectedCategory == AllCategories || p.ScentCategory == state.SelectedCategory {
			out = append(out, p)
		}
	}

	switch ParseSortKey(string(state.SortKey)) {
	case enums.SortKeyPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return a.Price.Cmp(b.Price.Decimal) })
	case enums.SortKeyPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return b.Price.Cmp(a.Price.Decimal) })
	case enums.SortKeyNewest:
		sortNewest(out)
	default:
		slices.SortStableFunc(out, func(a, b Product) int { return cmp.Compare(b.Popularity, a.Popularity) })
	}
	return out
}

// sortNewest orders by descending creation time; rows without a parseable
// timestamp sink to the end.
func sortNewest(products []Product) {
	type keyed struct {
		product Product
		at      time.Time
		ok      bool
	}
	rows := make([]keyed, len(products))
	for i, p := range products {
		at, ok := parseCreatedAt(p.CreatedAt)
		rows[i] = keyed{product: p, at: at, ok: ok}
	}
	slices.SortStableFunc(rows, func(a, b keyed) int {
		switch {
		case a.ok && b.ok:
			return b.at.Compare(a.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})
	for i, row := range rows {
		products[i] = row.product
	}
}

func parseCreatedAt(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseSortKey maps transport input onto a sort key. Empty or unknown values
// fall back to popularity.
func ParseSortKey(raw string) enums.SortKey {
	key, err := enums.ParseSortKey(strings.TrimSpace(raw))
	if err != nil {
		return enums.SortKeyPopularity
	}
	return key
}

// NormalizeCategory trims transport input; blank selects every category.
// Category labels are matched case-sensitively so no case folding happens here.
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AllCategories
	}
	return trimmed
}
