package assistant

import "github.com/go-chi/chi/v5"

// Routes returns assistant routes
func Routes(handler *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/chat", handler.Chat)
	r.Post("/translate", handler.Translate)
	r.Post("/transcribe", handler.Transcribe)

	return r
}
