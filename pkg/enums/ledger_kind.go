package enums

import "fmt"

// LedgerKind names one of the two per-shopper ledgers.
type LedgerKind string

const (
	LedgerKindCart     LedgerKind = "cart"
	LedgerKindWishlist LedgerKind = "wishlist"
)

func (k LedgerKind) String() string { return string(k) }

// IsValid reports whether the value is a known LedgerKind.
func (k LedgerKind) IsValid() bool {
	return k == LedgerKindCart || k == LedgerKindWishlist
}

// ParseLedgerKind converts raw input into a LedgerKind.
func ParseLedgerKind(value string) (LedgerKind, error) {
	k := LedgerKind(value)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid ledger kind %q", value)
	}
	return k, nil
}
