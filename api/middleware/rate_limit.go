package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wickandhive/storefront-backend/api/responses"
	pkgerrors "github.com/wickandhive/storefront-backend/pkg/errors"
	"github.com/wickandhive/storefront-backend/pkg/logger"
)

// RateLimiter counts requests per scope inside a fixed window.
type RateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// RateLimit caps how often a single session can hit the wrapped route.
// A limiter outage fails open: an unavailable counter must not take
// checkout down with it.
func RateLimit(limiter RateLimiter, limit int64, window time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			scope := strings.Join([]string{
				SessionIDFromContext(r.Context()),
				r.Method,
				r.URL.Path,
			}, "|")

			allowed, count, err := limiter.FixedWindowAllow(r.Context(), scope, limit, window)
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "rate_limit.counter_failed", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if logg != nil {
					fields := logg.WithFields(r.Context(), map[string]any{
						"scope": scope,
						"count": count,
					})
					logg.Warn(fields, "rate_limit.exceeded")
				}
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeRateLimit, "Too many requests, please retry shortly"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
