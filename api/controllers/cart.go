package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	"github.com/emberwick/storefront-api/internal/cart"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

type lineItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, session string) (cart.View, error) {
		return svc.View(r.Context(), session)
	})
}

// CartAddItem adds one unit of the posted product to the session cart.
func CartAddItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, session string) (cart.View, error) {
		var payload lineItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return cart.View{}, err
		}
		return svc.Add(r.Context(), session, payload.ProductID)
	})
}

// CartRemoveItem drops the whole line for the product, whatever its quantity.
func CartRemoveItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, logg, func(r *http.Request, session string) (cart.View, error) {
		return svc.Remove(r.Context(), session, chi.URLParam(r, "productId"))
	})
}

func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Clear(r.Context(), session); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func cartHandler(svc cart.Service, logg *logger.Logger, run func(*http.Request, string) (cart.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		session, err := sessionFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := run(r, session)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}
