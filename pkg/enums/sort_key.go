package enums

import "fmt"

// SortKey selects the ordering applied to the storefront catalog view.
type SortKey string

const (
	SortKeyPopularity SortKey = "popularity"
	SortKeyPriceAsc   SortKey = "price-asc"
	SortKeyPriceDesc  SortKey = "price-desc"
	SortKeyNewest     SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortKeyPopularity,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
	SortKeyNewest,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
