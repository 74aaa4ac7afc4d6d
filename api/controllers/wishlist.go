package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	"github.com/emberwick/storefront-api/internal/wishlist"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

func WishlistFetch(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return wishlistHandler(svc, logg, func(r *http.Request, session string) (wishlist.View, error) {
		return svc.View(r.Context(), session)
	})
}

// WishlistAddItem saves a product; saving one already listed changes nothing.
func WishlistAddItem(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return wishlistHandler(svc, logg, func(r *http.Request, session string) (wishlist.View, error) {
		var payload lineItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return wishlist.View{}, err
		}
		return svc.Add(r.Context(), session, payload.ProductID)
	})
}

func WishlistRemoveItem(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return wishlistHandler(svc, logg, func(r *http.Request, session string) (wishlist.View, error) {
		return svc.Remove(r.Context(), session, chi.URLParam(r, "productId"))
	})
}

func WishlistClear(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
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

func wishlistHandler(svc wishlist.Service, logg *logger.Logger, run func(*http.Request, string) (wishlist.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
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
