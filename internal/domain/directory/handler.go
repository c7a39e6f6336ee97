package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Handler handles directory HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates directory handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /services
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*Response, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewResponse(e))
	}
	response.OK(w, out)
}

// Create handles POST /admin/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	e, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, NewResponse(e))
}

// Routes returns public directory routes
func Routes(handler *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", handler.List)
	return r
}

// AdminRoutes returns management routes. Callers mount these behind the
// auth and admin-gate middleware.
func AdminRoutes(handler *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", handler.Create)
	return r
}
