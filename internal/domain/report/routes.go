package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public report routes
func Routes(handler *Handler, optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.ListApproved)

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Post("/", handler.Create)
	})

	return r
}

// AdminRoutes returns moderation routes. Callers mount these behind the
// auth and admin-gate middleware.
func AdminRoutes(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.List)
	r.Get("/{id}", handler.Get)
	r.Patch("/{id}/status", handler.UpdateStatus)

	return r
}
