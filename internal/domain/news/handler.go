package news

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Handler handles news HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates news handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /news
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}

	articles, total, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*Response, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewResponse(a, h.service.CoverURL, false))
	}

	response.WithMeta(w, out, response.Meta{Total: total, Limit: limit, Offset: offset})
}

// Get handles GET /news/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid article ID")
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrArticleNotFound {
			response.NotFound(w, "Article not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewResponse(a, h.service.CoverURL, true))
}

// Create handles POST /admin/news (multipart form)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := &CreateRequest{
		Title:    r.FormValue("title"),
		Summary:  r.FormValue("summary"),
		Body:     r.FormValue("body"),
		Category: r.FormValue("category"),
	}

	var cover io.Reader
	if f, _, err := r.FormFile("cover"); err == nil {
		defer f.Close()
		cover = f
	}

	a, err := h.service.Create(r.Context(), req, cover)
	if err != nil {
		switch err {
		case ErrInvalidCover:
			response.BadRequest(w, "Cover must be a valid image")
		case validator.ErrTitleRequired, validator.ErrTitleTooShort, validator.ErrTitleTooLong,
			validator.ErrDescriptionRequired, validator.ErrDescriptionTooShort, validator.ErrDescriptionTooLong:
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, NewResponse(a, h.service.CoverURL, true))
}
