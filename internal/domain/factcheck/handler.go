package factcheck

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Rai-jal/citizen-voice-api/internal/domain/admin"
	"github.com/Rai-jal/citizen-voice-api/internal/middleware"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Handler handles fact-check HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates fact-check handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /factchecks (multipart form)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := &CreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	var files []UploadFile
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := fh.Open()
			if err != nil {
				response.BadRequest(w, "Unreadable file in form")
				return
			}
			defer f.Close()
			files = append(files, UploadFile{Name: fh.Filename, Size: fh.Size, Reader: f})
		}
	}

	result, err := h.service.Create(r.Context(), req, middleware.GetUserID(r.Context()), files)
	if err != nil {
		switch err {
		case validator.ErrClaimRequired, validator.ErrClaimTooShort, validator.ErrClaimTooLong,
			validator.ErrDescriptionTooShort, validator.ErrDescriptionTooLong:
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	resp := NewResponse(result.FactCheck, h.service.AttachmentURL)
	if len(result.Warnings) > 0 {
		response.CreatedWithWarnings(w, resp, result.Warnings)
		return
	}
	response.Created(w, resp)
}

// ListRecent handles GET /factchecks
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	checks, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, h.toResponses(checks))
}

// Get handles GET /factchecks/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid fact-check ID")
		return
	}

	fc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrFactCheckNotFound {
			response.NotFound(w, "Fact-check not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewResponse(fc, h.service.AttachmentURL))
}

// List handles GET /admin/factchecks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	verdict := Verdict(r.URL.Query().Get("verdict"))

	checks, total, err := h.service.List(r.Context(), middleware.GetUserID(r.Context()), tokenMeta(r), verdict, limit, offset)
	if err != nil {
		switch err {
		case ErrNotAuthorized:
			response.Forbidden(w, err.Error())
		case ErrInvalidVerdict:
			response.BadRequest(w, "Unknown verdict filter")
		default:
			response.InternalError(w)
		}
		return
	}

	response.WithMeta(w, h.toResponses(checks), response.Meta{Total: total, Limit: limit, Offset: offset})
}

// UpdateVerdict handles PATCH /admin/factchecks/{id}/verdict
func (h *Handler) UpdateVerdict(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid fact-check ID")
		return
	}

	var req UpdateVerdictRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	fc, err := h.service.UpdateVerdict(r.Context(), middleware.GetUserID(r.Context()), tokenMeta(r), id, Verdict(req.Verdict))
	if err != nil {
		switch err {
		case ErrNotAuthorized:
			response.Forbidden(w, err.Error())
		case ErrFactCheckNotFound:
			response.NotFound(w, "Fact-check not found")
		case ErrInvalidVerdict:
			response.BadRequest(w, "Unknown verdict")
		case ErrInvalidTransition:
			response.Conflict(w, "Verdict transition not allowed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewResponse(fc, h.service.AttachmentURL))
}

func (h *Handler) toResponses(checks []*FactCheck) []*Response {
	out := make([]*Response, 0, len(checks))
	for _, fc := range checks {
		out = append(out, NewResponse(fc, h.service.AttachmentURL))
	}
	return out
}

func tokenMeta(r *http.Request) admin.TokenMeta {
	return admin.TokenMeta{
		Role:  middleware.GetRole(r.Context()),
		Email: middleware.GetEmail(r.Context()),
	}
}
