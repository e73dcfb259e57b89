package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/wickandhive/storefront-backend/api/responses"
	"github.com/wickandhive/storefront-backend/pkg/config"
	"github.com/wickandhive/storefront-backend/pkg/db"
	pkgredis "github.com/wickandhive/storefront-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datastore and the cache. A nil dependency is
// reported as skipped rather than failing readiness, so partial wiring
// in tests stays green.
func HealthReady(cfg *config.Config, database db.Pinger, cache pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		ready := true
		if database == nil {
			checks["database"] = "skipped"
		} else if err := database.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
			ready = false
		} else {
			checks["database"] = "ok"
		}
		if cache == nil {
			checks["redis"] = "skipped"
		} else if err := cache.Ping(ctx); err != nil {
			checks["redis"] = "unreachable"
			ready = false
		} else {
			checks["redis"] = "ok"
		}

		status := "ready"
		httpStatus := http.StatusOK
		if !ready {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		responses.WriteSuccessStatus(w, httpStatus, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
