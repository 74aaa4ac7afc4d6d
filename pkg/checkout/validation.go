package checkout

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
)

const (
	maxNameLen    = 120
	maxAddressLen = 500
)

var validate = validator.New()

// ContactInput is the shopper's delivery contact captured at checkout.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Normalize trims every field.
func (c ContactInput) Normalize() ContactInput {
	return ContactInput{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.ToLower(strings.TrimSpace(c.Email)),
		Address: strings.TrimSpace(c.Address),
	}
}

// ContactViolation names one invalid contact field.
type ContactViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidateContact checks a normalized contact and reports every invalid field at once.
func ValidateContact(c ContactInput) error {
	var violations []ContactViolation
	check := func(field, value string, maxLen int) {
		switch {
		case value == "":
			violations = append(violations, ContactViolation{Field: field, Reason: "is required"})
		case len(value) > maxLen:
			violations = append(violations, ContactViolation{Field: field, Reason: fmt.Sprintf("must be at most %d characters", maxLen)})
		}
	}
	check("name", c.Name, maxNameLen)
	check("address", c.Address, maxAddressLen)

	if c.Email == "" {
		violations = append(violations, ContactViolation{Field: "email", Reason: "is required"})
	} else if err := validate.Var(c.Email, "email"); err != nil {
		violations = append(violations, ContactViolation{Field: "email", Reason: "must be a valid email"})
	}

	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid contact details for %d field(s)", len(violations))).WithDetails(map[string]any{
		"violations": violations,
	})
}
