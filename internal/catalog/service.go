package catalog

import (
	"context"
	"strings"

	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

// ProductSource supplies the full active catalog in one call.
type ProductSource interface {
	FetchAllProducts(ctx context.Context) ([]Product, error)
}

// CategorySource supplies the category labels surfaced by the filter UI.
type CategorySource interface {
	FetchActiveCategoryNames(ctx context.Context) ([]string, error)
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Products   ProductSource
	Categories CategorySource
	Logger     *logger.Logger
}

// Service exposes read-side catalog operations to transports and other domains.
type Service interface {
	Catalog(ctx context.Context) ([]Product, error)
	Categories(ctx context.Context) []string
	Browse(ctx context.Context, state FilterState) (View, error)
	Product(ctx context.Context, id string) (Product, error)
}

type service struct {
	products   ProductSource
	categories CategorySource
	logg       *logger.Logger
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product source is required")
	}
	if params.Categories == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category source is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &service{
		products:   params.Products,
		categories: params.Categories,
		logg:       params.Logger,
	}, nil
}

// Catalog returns every active product; the result is the whole catalog for this request.
func (s *service) Catalog(ctx context.Context) ([]Product, error) {
	products, err := s.products.FetchAllProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load catalog")
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// Categories never fails: a source error or an empty result yields the default labels.
func (s *service) Categories(ctx context.Context) []string {
	names, err := s.categories.FetchActiveCategoryNames(ctx)
	if err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "category source failed; serving defaults")
		return defaultCategories()
	}
	if len(names) == 0 {
		s.logg.Warn(ctx, "no active categories; serving defaults")
		return defaultCategories()
	}
	return names
}

func (s *service) Browse(ctx context.Context, state FilterState) (View, error) {
	state.SelectedCategory = NormalizeCategory(state.SelectedCategory)
	state.SortKey = ParseSortKey(string(state.SortKey))

	products, err := s.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	return View{
		Products:   DeriveView(products, state),
		Categories: s.Categories(ctx),
		Selected:   state.SelectedCategory,
		Sort:       state.SortKey,
	}, nil
}

// Product looks id up in the current catalog, so inactive products are not found.
func (s *service) Product(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	products, err := s.Catalog(ctx)
	if err != nil {
		return Product{}, err
	}
	if p, ok := Index(products)[id]; ok {
		return p, nil
	}
	return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// Index keys products by id.
func Index(products []Product) map[string]Product {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}

func defaultCategories() []string {
	return append([]string(nil), DefaultCategories...)
}
