package ledger

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/emberwick/storefront-api/pkg/enums"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/metrics"
)

// Line is one persisted ledger entry. A ledger holds at most one line per product.
type Line struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Ledger is the read-modify-write API over one slot. Concurrent writers to the
// same slot are last-writer-wins.
type Ledger struct {
	slot    Slot
	kind    enums.LedgerKind
	metrics *metrics.LedgerMetrics
}

// New binds a ledger to slot.
func New(slot Slot, kind enums.LedgerKind, m *metrics.LedgerMetrics) *Ledger {
	return &Ledger{slot: slot, kind: kind, metrics: m}
}

// Kind reports which ledger this is.
func (l *Ledger) Kind() enums.LedgerKind {
	return l.kind
}

// List returns the stored lines. A missing or unreadable value is an empty ledger;
// only slot I/O failures are errors.
func (l *Ledger) List(ctx context.Context) ([]Line, error) {
	raw, ok, err := l.slot.Load(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read "+l.kind.String())
	}
	if !ok {
		return []Line{}, nil
	}
	return Decode(raw), nil
}

// Add increments productID's quantity, appending a new line when absent.
func (l *Ledger) Add(ctx context.Context, productID string) ([]Line, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	lines, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range lines {
		if lines[i].ID == productID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{ID: productID, Quantity: 1})
	}

	if err := l.persist(ctx, lines); err != nil {
		return nil, err
	}
	l.metrics.IncMutation(l.kind.String(), "add")
	return lines, nil
}

// Remove deletes productID's whole line regardless of quantity.
func (l *Ledger) Remove(ctx context.Context, productID string) ([]Line, error) {
	productID = strings.TrimSpace(productID)
	lines, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}

	if err := l.persist(ctx, kept); err != nil {
		return nil, err
	}
	l.metrics.IncMutation(l.kind.String(), "remove")
	return kept, nil
}

// Clear erases the slot.
func (l *Ledger) Clear(ctx context.Context) error {
	if err := l.slot.Erase(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear "+l.kind.String())
	}
	l.metrics.IncMutation(l.kind.String(), "clear")
	return nil
}

func (l *Ledger) persist(ctx context.Context, lines []Line) error {
	if err := l.slot.Store(ctx, Encode(lines)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write "+l.kind.String())
	}
	return nil
}

// Encode serializes lines as the JSON array stored in a slot.
func Encode(lines []Line) string {
	if lines == nil {
		lines = []Line{}
	}
	b, err := json.Marshal(lines)
	if err != nil {
		// []Line always marshals.
		return "[]"
	}
	return string(b)
}

// Decode parses a slot value. Corrupt input yields an empty ledger; lines with no
// id or a non-positive quantity are dropped.
func Decode(raw string) []Line {
	var parsed []Line
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []Line{}
	}
	lines := make([]Line, 0, len(parsed))
	for _, line := range parsed {
		if strings.TrimSpace(line.ID) == "" || line.Quantity < 1 {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
