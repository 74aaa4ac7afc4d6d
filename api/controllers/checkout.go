package controllers

import (
	"net/http"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	checkoutsvc "github.com/emberwick/storefront-api/internal/checkout"
	pkgcheckout "github.com/emberwick/storefront-api/pkg/checkout"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

// CheckoutConfirm places the session cart as an order and empties the cart.
func CheckoutConfirm(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}
		session, err := sessionFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var contact pkgcheckout.ContactInput
		if err := validators.DecodeJSONBody(r, &contact); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Confirm(r.Context(), session, contact)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
