package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount rendered with exactly two fractional digits on the wire.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps d, rounding half away from zero to cents.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d.Round(2)}
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// MarshalJSON emits the amount as a quoted fixed-point string, e.g. "92.00".
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts quoted or bare numbers.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid money amount: %w", err)
	}
	m.Decimal = d
	return nil
}
