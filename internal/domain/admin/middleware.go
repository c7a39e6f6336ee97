package admin

import (
	"net/http"

	"github.com/Rai-jal/citizen-voice-api/internal/middleware"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
)

// RequireAdmin gates a route behind the admin check. It expects the auth
// middleware to have run first; the gate decides routing only, every data
// mutation is re-checked at the repository level.
func RequireAdmin(svc *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !middleware.IsAuthenticated(ctx) {
				response.Unauthorized(w, "Authentication required")
				return
			}

			meta := TokenMeta{
				Role:  middleware.GetRole(ctx),
				Email: middleware.GetEmail(ctx),
			}
			if !svc.IsAdmin(ctx, middleware.GetUserID(ctx), meta) {
				response.Forbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission gates a route behind a specific permission.
func RequirePermission(svc *Service, perm Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if !middleware.IsAuthenticated(ctx) {
				response.Unauthorized(w, "Authentication required")
				return
			}

			if !svc.HasPermission(ctx, middleware.GetUserID(ctx), perm) {
				response.Forbidden(w, "Permission denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
