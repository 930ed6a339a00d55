package middleware

import (
	"net/http"

	"github.com/sillygoals/sillygoals/internal/ctxkeys"
	"github.com/sillygoals/sillygoals/internal/htmx"
	"github.com/sillygoals/sillygoals/internal/service"
)

// AuthMiddleware resolves the session cookie to a user and places it in the
// request context. Requests without a valid session continue anonymously.
func AuthMiddleware(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authService.CookieName())
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			user, err := authService.UserByID(userID)
			if err != nil {
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			// Keep the hash out of the request context
			user.PasswordHash = ""

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the user is authenticated. Fragment requests get an
// HX-Redirect so the client performs a full-page navigation to /auth.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			if htmx.IsRequest(r) {
				htmx.Redirect(w, "/auth")
				w.WriteHeader(http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireGuest ensures the user is not authenticated
func RequireGuest(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user != nil {
			if htmx.IsRequest(r) {
				htmx.Redirect(w, "/dashboard")
				w.WriteHeader(http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}
