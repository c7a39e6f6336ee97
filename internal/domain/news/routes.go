package news

import "github.com/go-chi/chi/v5"

// Routes returns public news routes
func Routes(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", handler.List)
	r.Get("/{id}", handler.Get)

	return r
}

// AdminRoutes returns publishing routes. Callers mount these behind the
// auth and admin-gate middleware.
func AdminRoutes(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", handler.Create)

	return r
}
