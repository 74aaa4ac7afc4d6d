package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/emberwick/storefront-api/api/responses"
	"github.com/emberwick/storefront-api/pkg/config"
	pkgerrors "github.com/emberwick/storefront-api/pkg/errors"
	"github.com/emberwick/storefront-api/pkg/logger"
)

const (
	envHeader         = "X-Emberwick-Env"
	readinessDeadline = 2 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency probed by HealthReady. A nil Pinger is skipped.
type ReadinessCheck struct {
	Name   string
	Pinger pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every configured dependency and fails with 503 on the first error.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessDeadline)
		defer cancel()

		status := map[string]string{}
		for _, check := range checks {
			if check.Pinger == nil {
				continue
			}
			if err := check.Pinger.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, check.Name+" unavailable"))
				return
			}
			status[check.Name] = "ok"
		}

		status["status"] = "ready"
		responses.WriteSuccess(w, status)
	}
}
