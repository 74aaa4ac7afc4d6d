package catalog

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

type stubProducts struct {
	products []Product
	err      error
	calls    int
}

func (s *stubProducts) FetchAllProducts(context.Context) ([]Product, error) {
	s.calls++
	return s.products, s.err
}

type stubCategories struct {
	names []string
	err   error
}

func (s stubCategories) FetchActiveCategoryNames(context.Context) ([]string, error) {
	return s.names, s.err
}

func newTestService(t *testing.T, products ProductSource, categories CategorySource) (Service, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	svc, err := NewService(ServiceParams{
		Products:   products,
		Categories: categories,
		Logger:     logger.New(logger.Options{ServiceName: "test", Output: buf}),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, buf
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected missing dependency error")
	}
}

func TestCategoriesFallBackToDefaults(t *testing.T) {
	svc, buf := newTestService(t, &stubProducts{}, stubCategories{err: errors.New("db down")})

	got := svc.Categories(context.Background())
	if strings.Join(got, ",") != "Floral,Citrus,Woody,Fresh,Sweet" {
		t.Fatalf("unexpected default categories %v", got)
	}
	if !strings.Contains(buf.String(), "serving defaults") {
		t.Fatalf("expected fallback warning, got %s", buf.String())
	}

	got[0] = "Mutated"
	if DefaultCategories[0] != "Floral" {
		t.Fatal("callers must not be able to mutate the default list")
	}

	svc, _ = newTestService(t, &stubProducts{}, stubCategories{})
	if got := svc.Categories(context.Background()); len(got) != 5 {
		t.Fatalf("expected defaults for empty source, got %v", got)
	}

	svc, _ = newTestService(t, &stubProducts{}, stubCategories{names: []string{"Smoky"}})
	if got := svc.Categories(context.Background()); len(got) != 1 || got[0] != "Smoky" {
		t.Fatalf("expected source categories, got %v", got)
	}
}

func TestBrowseNormalizesInputs(t *testing.T) {
	products := &stubProducts{products: sampleCatalog()}
	svc, _ := newTestService(t, products, stubCategories{names: []string{"Floral", "Citrus"}})

	view, err := svc.Browse(context.Background(), FilterState{SelectedCategory: " ", SortKey: "bogus"})
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	if view.Selected != AllCategories || view.Sort != "popularity" {
		t.Fatalf("unexpected normalized state %q/%q", view.Selected, view.Sort)
	}
	if len(view.Products) != len(sampleCatalog()) || len(view.Categories) != 2 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestBrowseSurfacesCatalogFailure(t *testing.T) {
	svc, _ := newTestService(t, &stubProducts{err: errors.New("timeout")}, stubCategories{})

	_, err := svc.Browse(context.Background(), FilterState{})
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestCatalogNeverReturnsNil(t *testing.T) {
	svc, _ := newTestService(t, &stubProducts{}, stubCategories{})
	got, err := svc.Catalog(context.Background())
	if err != nil || got == nil {
		t.Fatalf("expected empty catalog, got %#v err=%v", got, err)
	}
}

func TestProductLookup(t *testing.T) {
	svc, _ := newTestService(t, &stubProducts{products: sampleCatalog()}, stubCategories{})

	p, err := svc.Product(context.Background(), "c")
	if err != nil || p.ID != "c" {
		t.Fatalf("expected product c, got %+v err=%v", p, err)
	}
	if _, err := svc.Product(context.Background(), "zzz"); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Product(context.Background(), " "); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
