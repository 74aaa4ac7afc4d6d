package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/pkg/enums"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

// CatalogBrowse serves the filtered and sorted product grid with its filter inputs.
func CatalogBrowse(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		query := r.URL.Query()
		view, err := svc.Browse(r.Context(), catalog.FilterState{
			SelectedCategory: query.Get("category"),
			SortKey:          enums.SortKey(query.Get("sort")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, view)
	}
}

func CatalogProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		product, err := svc.Product(r.Context(), chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"categories": svc.Categories(r.Context()),
		})
	}
}
