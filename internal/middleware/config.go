package middleware

import (
	"net/http"

	"github.com/sillygoals/sillygoals/internal/config"
	"github.com/sillygoals/sillygoals/internal/ctxkeys"
)

// Config places the sanitized app configuration in the request context.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
