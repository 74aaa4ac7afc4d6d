package checkout

import (
	"strings"
	"testing"

	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
)

func TestValidateContact_Valid(t *testing.T) {
	contact := ContactInput{Name: " Ada ", Email: " Ada@Example.COM ", Address: "1 Wick Lane"}.Normalize()
	if contact.Email != "ada@example.com" || contact.Name != "Ada" {
		t.Fatalf("unexpected normalization: %+v", contact)
	}
	if err := ValidateContact(contact); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateContact_Violations(t *testing.T) {
	contact := ContactInput{
		Name:    strings.Repeat("x", maxNameLen+1),
		Email:   "not-an-email",
		Address: "",
	}
	err := ValidateContact(contact)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code, got %v", err)
	}

	typed := pkgerrors.As(err)
	details, ok := typed.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", typed.Details())
	}
	violations, ok := details["violations"].([]ContactViolation)
	if !ok {
		t.Fatalf("expected violations slice, got %T", details["violations"])
	}
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %+v", len(violations), violations)
	}
}
