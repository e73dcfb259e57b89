package middleware

import (
	"net/http"
	"strings"

	"github.com/wickandhive/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session copies the storefront session identifier from the request header into
// the context. Legacy clients that send session_id in the body or query string
// are handled by the individual controllers.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if sessionID == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
