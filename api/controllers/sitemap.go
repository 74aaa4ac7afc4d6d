package controllers

import (
	"net/http"
	"time"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/sitemap"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

// Sitemap renders sitemaps.org XML for the storefront pages backed by the live catalog.
func Sitemap(svc catalog.Service, baseURL string, now func() time.Time, logg *logger.Logger) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		products, err := svc.Catalog(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, err := sitemap.Marshal(sitemap.Build(baseURL, products, svc.Categories(r.Context()), now()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render sitemap"))
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
