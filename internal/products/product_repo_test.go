package product

import (
	"context"
	"testing"
	"time"

	"github.com/emberwick/storefront-api/pkg/pagination"
	"github.com/google/uuid"
)

func TestFetchAllProductsActiveOldestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	second := mustCreateTestProduct(t, db, "Cedar Hearth", "32.00", base.Add(time.Hour), true)
	first := mustCreateTestProduct(t, db, "Lavender Dusk", "28.00", base, true)
	mustCreateTestProduct(t, db, "Retired Rose", "12.00", base.Add(-time.Hour), false)

	products, err := repo.FetchAllProducts(context.Background())
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(products))
	}
	if products[0].ID != first.ID.String() || products[1].ID != second.ID.String() {
		t.Fatalf("unexpected order: %s, %s", products[0].Name, products[1].Name)
	}
	if products[0].Price.String() != "28.00" {
		t.Fatalf("expected price 28.00, got %s", products[0].Price)
	}
	if products[0].CreatedAt != "2026-03-01T09:00:00Z" {
		t.Fatalf("unexpected created_at %q", products[0].CreatedAt)
	}
}

func TestRepositoryListPaginatesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		p := mustCreateTestProduct(t, db, "Candle", "10.00", base.Add(time.Duration(i)*time.Minute), i%2 == 0)
		ids = append(ids, p.ID)
	}

	ctx := context.Background()
	page, next, err := repo.List(ctx, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list first page: %v", err)
	}
	if len(page) != 2 || next == "" {
		t.Fatalf("expected 2 rows and a cursor, got %d %q", len(page), next)
	}
	if page[0].ID != ids[4] || page[1].ID != ids[3] {
		t.Fatal("expected newest rows first")
	}

	seen := len(page)
	for next != "" {
		page, next, err = repo.List(ctx, pagination.Params{Limit: 2, Cursor: next})
		if err != nil {
			t.Fatalf("list next page: %v", err)
		}
		seen += len(page)
	}
	if seen != 5 {
		t.Fatalf("expected to walk 5 rows, saw %d", seen)
	}
}

func TestRepositoryDeleteReportsMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	p := mustCreateTestProduct(t, db, "Ember", "20.00", time.Now(), true)

	deleted, err := repo.Delete(context.Background(), p.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got %v %v", deleted, err)
	}
	deleted, err = repo.Delete(context.Background(), p.ID)
	if err != nil || deleted {
		t.Fatalf("expected second delete to report missing, got %v %v", deleted, err)
	}
}
