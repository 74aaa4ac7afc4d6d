package wishlist

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

// View lists saved products in the order they were added.
type View struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Catalog catalogReader
	Ledgers ledgerFactory
}

// Service exposes business rules for wishlist management.
type Service interface {
	View(ctx context.Context, sessionID string) (View, error)
	Add(ctx context.Context, sessionID, productID string) (View, error)
	Remove(ctx context.Context, sessionID, productID string) (View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	catalog catalogReader
	ledgers ledgerFactory
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	if params.Ledgers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ledger factory is required")
	}
	return &service{catalog: params.Catalog, ledgers: params.Ledgers}, nil
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
	return render(lines, products), nil
}

// Add saves productID. Saving a product that is already present changes nothing.
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

	lines, err := l.List(ctx)
	if err != nil {
		return View{}, err
	}
	if !contains(lines, productID) {
		if lines, err = l.Add(ctx, productID); err != nil {
			return View{}, err
		}
	}
	return render(lines, products), nil
}

// Remove drops the entry regardless of prior state.
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
	return render(lines, products), nil
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
	return s.ledgers.For(sessionID, enums.LedgerKindWishlist), nil
}

func contains(lines []ledger.Line, productID string) bool {
	for _, line := range lines {
		if line.ID == productID {
			return true
		}
	}
	return false
}

func render(lines []ledger.Line, products []catalog.Product) View {
	items := ledger.Rehydrate(lines, products)
	out := make([]catalog.Product, 0, len(items))
	for _, item := range items {
		out = append(out, item.Product)
	}
	return View{Products: out, Count: len(out)}
}
