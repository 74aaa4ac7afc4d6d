package controllers

import (
	"net/http"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/api/validators"
	"github.com/emberwick/storefront-api/internal/auth"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

// AdminAuthLogin exchanges the back-office credentials for a bearer token.
func AdminAuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var req auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.AdminLogin(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}
