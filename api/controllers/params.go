package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/emberwick/storefront-api/api/middleware"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
)

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id").WithDetails(map[string]any{"field": name})
	}
	return id, nil
}

func sessionFrom(r *http.Request) (string, error) {
	session := middleware.SessionIDFromContext(r.Context())
	if session == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return session, nil
}
