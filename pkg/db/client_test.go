package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testModel struct {
	ID   int
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&testModel{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTx_CommitsAndRollbacks(t *testing.T) {
	db := newTestDB(t)
	client := NewFromConn(db, "sqlite")

	ctx := context.Background()
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&testModel{Name: "committed"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	var count int64
	if err := db.Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}

	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&testModel{Name: "rolled"}).Error; err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected WithTx to return an error")
	}
	if err := db.Model(&testModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed after rollback: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected rollback to leave 1 record, got %d", count)
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	client := NewFromConn(db, "sqlite")
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error is not a violation")
	}
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}, "categories_name_key") {
		t.Fatal("expected pgx unique violation to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: "other"}, "categories_name_key") {
		t.Fatal("expected constraint mismatch to be rejected")
	}
	if !IsUniqueViolation(&pq.Error{Code: "23505"}, "") {
		t.Fatal("expected pq unique violation to match")
	}
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: categories.name"), "") {
		t.Fatal("expected sqlite unique violation to match")
	}
}

func TestSQLiteUniqueViolationDetected(t *testing.T) {
	conn := newTestDB(t)
	type uniqueModel struct {
		ID   int
		Name string `gorm:"uniqueIndex"`
	}
	if err := conn.AutoMigrate(&uniqueModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := conn.Create(&uniqueModel{Name: "dup"}).Error; err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := conn.Create(&uniqueModel{Name: "dup"}).Error
	if !IsUniqueViolation(err, "") {
		t.Fatalf("expected unique violation, got %v", err)
	}
}
