package cart

import (
	"context"
	"strings"

	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/ledger"
	"github.com/emberwick/storefront-api/pkg/enums"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
)

type catalogReader interface {
	Catalog(ctx context.Context) ([]catalog.Product, error)
}

type ledgerFactory interface {
	For(sessionID string, kind enums.LedgerKind) *ledger.Ledger
}

// View is the rendered cart: rehydrated lines plus derived totals.
type View struct {
	Items  []ledger.Item `json:"items"`
	Totals ledger.Totals `json:"totals"`
}

// Service exposes the shopper cart.
type Service interface {
	View(ctx context.Context, sessionID string) (View, error)
	Add(ctx context.Context, sessionID, productID string) (View, error)
	Remove(ctx context.Context, sessionID, productID string) (View, error)
	Clear(ctx context.Context, sessionID string) error
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Catalog  catalogReader
	Ledgers  ledgerFactory
	Shipping ledger.ShippingPolicy
}

type service struct {
	catalog catalogReader
	ledgers ledgerFactory
	policy  ledger.ShippingPolicy
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Ledgers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ledger factory is required")
	}
	if params.Shipping.Fee.IsNegative() || params.Shipping.FreeThreshold.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shipping amounts must be non-negative")
	}
	return &service{
		catalog: params.Catalog,
		ledgers: params.Ledgers,
		policy:  params.Shipping,
	}, nil
}

func (s *service) View(ctx context.Context, sessionID string) (View, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return View{}, err
	}
	lines, err := l.List(ctx)
	if err != nil {
		return View{}, err
	}
	products, err := s.catalog.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	return s.render(lines, products), nil
}

// Add increments the product's quantity. The product must be in the current catalog.
func (s *service) Add(ctx context.Context, sessionID, productID string) (View, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return View{}, err
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return View{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	products, err := s.catalog.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	if _, ok := catalog.Index(products)[productID]; !ok {
		return View{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}

	lines, err := l.Add(ctx, productID)
	if err != nil {
		return View{}, err
	}
	return s.render(lines, products), nil
}

// Remove drops the product's line entirely.
func (s *service) Remove(ctx context.Context, sessionID, productID string) (View, error) {
	l, err := s.ledger(sessionID)
	if err != nil {
		return View{}, err
	}
	lines, err := l.Remove(ctx, productID)
	if err != nil {
		return View{}, err
	}
	products, err := s.catalog.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	return s.render(lines, products), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	l, err := s.ledger(sessionID)
	if err != nil {
		return err
	}
	return l.Clear(ctx)
}

func (s *service) ledger(sessionID string) (*ledger.Ledger, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	return s.ledgers.For(sessionID, enums.LedgerKindCart), nil
}

func (s *service) render(lines []ledger.Line, products []catalog.Product) View {
	items := ledger.Rehydrate(lines, products)
	return View{Items: items, Totals: ledger.ComputeTotals(items, s.policy)}
}
