package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emberwick/storefront-api/api/middleware"
	"github.com/emberwick/storefront-api/internal/cart"
	"github.com/emberwick/storefront-api/internal/catalog"
	checkoutsvc "github.com/emberwick/storefront-api/internal/checkout"
	"github.com/emberwick/storefront-api/internal/ledger"
	"github.com/emberwick/storefront-api/internal/wishlist"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/outbox"
	"github.com/emberwick/storefront-api/pkg/types"
)

type fixedProducts struct {
	products []catalog.Product
	err      error
}

func (f fixedProducts) FetchAllProducts(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

type fixedCategories []string

func (f fixedCategories) FetchActiveCategoryNames(context.Context) ([]string, error) {
	return f, nil
}

type recordingNotifier struct {
	events []outbox.PayloadEnvelope
}

func (n *recordingNotifier) NotifyOrderConfirmed(_ context.Context, event outbox.PayloadEnvelope) error {
	n.events = append(n.events, event)
	return nil
}

type storefront struct {
	catalog  catalog.Service
	cart     cart.Service
	wishlist wishlist.Service
	checkout checkoutsvc.Service
	notifier *recordingNotifier
}

func candle(id, name, category, price string, popularity int) catalog.Product {
	return catalog.Product{
		ID:            id,
		Name:          name,
		ScentCategory: category,
		Price:         types.NewMoney(decimal.RequireFromString(price)),
		Popularity:    popularity,
		CreatedAt:     "2024-01-0" + id + "T00:00:00Z",
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newStorefront(t *testing.T) *storefront {
	t.Helper()
	logg := testLogger()
	products := fixedProducts{products: []catalog.Product{
		candle("1", "Lavender Dreams", "Floral", "24.00", 90),
		candle("2", "Sunrise Citrus", "Citrus", "22.00", 70),
		candle("3", "Cedar Hearth", "Woody", "34.00", 80),
	}}

	cat, err := catalog.NewService(catalog.ServiceParams{
		Products:   products,
		Categories: fixedCategories{"Floral", "Citrus", "Woody"},
		Logger:     logg,
	})
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}

	factory := ledger.NewFactory(ledger.NewMemorySlots(), nil)
	shipping := ledger.ShippingPolicy{Fee: decimal.RequireFromString("5.99"), FreeThreshold: decimal.NewFromInt(50)}

	cartSvc, err := cart.NewService(cart.ServiceParams{Catalog: cat, Ledgers: factory, Shipping: shipping})
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	wishSvc, err := wishlist.NewService(wishlist.ServiceParams{Catalog: cat, Ledgers: factory})
	if err != nil {
		t.Fatalf("wishlist service: %v", err)
	}
	notifier := &recordingNotifier{}
	checkout, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Catalog:  cat,
		Ledgers:  factory,
		Shipping: shipping,
		Notifier: notifier,
		Logger:   logg,
	})
	if err != nil {
		t.Fatalf("checkout service: %v", err)
	}

	return &storefront{catalog: cat, cart: cartSvc, wishlist: wishSvc, checkout: checkout, notifier: notifier}
}

// serve routes one request through a chi mux so URL params resolve.
func serve(t *testing.T, method, pattern, target, session, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if session != "" {
		req = req.WithContext(middleware.WithSessionID(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	envelope := struct {
		Data any `json:"data"`
	}{Data: dest}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rec.Body.String())
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return payload.Error.Code
}
