package ledger

import (
	"github.com/emberwick/storefront-api/pkg/enums"
	"github.com/emberwick/storefront-api/pkg/metrics"
)

// Factory builds ledgers for a shopper session. It is constructed once at startup
// and injected into the cart, wishlist and checkout services.
type Factory struct {
	slots   SlotProvider
	metrics *metrics.LedgerMetrics
}

func NewFactory(slots SlotProvider, m *metrics.LedgerMetrics) *Factory {
	return &Factory{slots: slots, metrics: m}
}

// For returns the ledger of kind owned by sessionID.
func (f *Factory) For(sessionID string, kind enums.LedgerKind) *Ledger {
	return New(f.slots.Slot(sessionID, kind), kind, f.metrics)
}
