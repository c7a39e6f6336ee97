package factcheck

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public fact-check routes
func Routes(handler *Handler, optionalAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.ListRecent)
	r.Get("/{id}", handler.Get)

	r.Group(func(r chi.Router) {
		r.Use(optionalAuth)
		r.Post("/", handler.Create)
	})

	return r
}

// AdminRoutes returns review routes. Callers mount these behind the auth
// and admin-gate middleware.
func AdminRoutes(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.List)
	r.Patch("/{id}/verdict", handler.UpdateVerdict)

	return r
}
