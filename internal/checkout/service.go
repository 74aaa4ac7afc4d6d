package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/ledger"
	pkgcheckout "github.com/emberwick/storefront-api/pkg/checkout"
	"github.com/emberwick/storefront-api/pkg/enums"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/outbox"
	"github.com/emberwick/storefront-api/pkg/outbox/payloads"
	"github.com/google/uuid"
)

type catalogReader interface {
	Catalog(ctx context.Context) ([]catalog.Product, error)
}

type ledgerFactory interface {
	For(sessionID string, kind enums.LedgerKind) *ledger.Ledger
}

// Confirmation is returned to the shopper after a successful checkout.
type Confirmation struct {
	OrderNumber string                   `json:"order_number"`
	Items       []ledger.Item            `json:"items"`
	Totals      ledger.Totals            `json:"totals"`
	Contact     pkgcheckout.ContactInput `json:"contact"`
	ConfirmedAt time.Time                `json:"confirmed_at"`
}

// Service executes checkout orchestration.
type Service interface {
	Confirm(ctx context.Context, sessionID string, contact pkgcheckout.ContactInput) (*Confirmation, error)
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Catalog  catalogReader
	Ledgers  ledgerFactory
	Shipping ledger.ShippingPolicy
	Notifier Notifier
	Logger   *logger.Logger
	Now      func() time.Time
}

type service struct {
	catalog  catalogReader
	ledgers  ledgerFactory
	shipping ledger.ShippingPolicy
	notifier Notifier
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Ledgers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ledger factory is required")
	}
	if params.Notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notifier is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		catalog:  params.Catalog,
		ledgers:  params.Ledgers,
		shipping: params.Shipping,
		notifier: params.Notifier,
		logg:     params.Logger,
		now:      now,
	}, nil
}

// Confirm prices the session's cart, emits an order.confirmed event and empties the
// cart. The cart is left untouched when notification fails so the shopper can retry.
func (s *service) Confirm(ctx context.Context, sessionID string, contact pkgcheckout.ContactInput) (*Confirmation, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	contact = contact.Normalize()
	if err := pkgcheckout.ValidateContact(contact); err != nil {
		return nil, err
	}

	cart := s.ledgers.For(sessionID, enums.LedgerKindCart)
	lines, err := cart.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	items := ledger.Rehydrate(lines, products)
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	totals := ledger.ComputeTotals(items, s.shipping)

	confirmation := &Confirmation{
		OrderNumber: newOrderNumber(),
		Items:       items,
		Totals:      totals,
		Contact:     contact,
		ConfirmedAt: s.now().UTC(),
	}

	envelope, err := outbox.NewEnvelope(payloads.EventOrderConfirmed, buildEvent(sessionID, confirmation), confirmation.ConfirmedAt)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build order event")
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"order_number": confirmation.OrderNumber,
		"event_id":     envelope.EventID,
	})
	if err := s.notifier.NotifyOrderConfirmed(ctx, envelope); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send order confirmation")
	}

	if err := cart.Clear(ctx); err != nil {
		s.logg.Error(ctx, "failed to clear cart after checkout", err)
	}
	s.logg.Info(ctx, "checkout confirmed")
	return confirmation, nil
}

func buildEvent(sessionID string, c *Confirmation) payloads.OrderConfirmedEvent {
	lines := make([]payloads.OrderEventLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, payloads.OrderEventLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return payloads.OrderConfirmedEvent{
		OrderNumber: c.OrderNumber,
		SessionID:   sessionID,
		Customer: payloads.OrderCustomer{
			Name:    c.Contact.Name,
			Email:   c.Contact.Email,
			Address: c.Contact.Address,
		},
		Lines:       lines,
		ItemCount:   c.Totals.ItemCount,
		Subtotal:    c.Totals.Subtotal,
		Shipping:    c.Totals.Shipping,
		Total:       c.Totals.Total,
		ConfirmedAt: c.ConfirmedAt,
	}
}

func newOrderNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EW-" + strings.ToUpper(id[:10])
}
