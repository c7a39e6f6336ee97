package report

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

// Handler handles report HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /reports (multipart form)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	maxMemory := int64(32 << 20)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := &CreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		IsAnonymous: r.FormValue("is_anonymous") == "true",
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
		case ErrTooManyAttachments:
			response.BadRequest(w, "Too many attachments")
		case validator.ErrTitleRequired, validator.ErrTitleTooShort, validator.ErrTitleTooLong,
			validator.ErrDescriptionRequired, validator.ErrDescriptionTooShort, validator.ErrDescriptionTooLong,
			validator.ErrLocationTooLong:
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	resp := NewResponse(result.Report, h.service.AttachmentURL)
	if len(result.Warnings) > 0 {
		response.CreatedWithWarnings(w, resp, result.Warnings)
		return
	}
	response.Created(w, resp)
}

// ListApproved handles GET /reports
func (h *Handler) ListApproved(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	reports, total, err := h.service.ListApproved(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, h.toResponses(reports), response.Meta{Total: total, Limit: limit, Offset: offset})
}

// List handles GET /admin/reports
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	filter := ListFilter{
		Status: Status(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}

	reports, total, err := h.service.List(r.Context(), middleware.GetUserID(r.Context()), tokenMeta(r), filter)
	if err != nil {
		switch err {
		case ErrNotAuthorized:
			response.Forbidden(w, err.Error())
		case ErrInvalidStatus:
			response.BadRequest(w, "Unknown status filter")
		default:
			response.InternalError(w)
		}
		return
	}

	response.WithMeta(w, h.toResponses(reports), response.Meta{Total: total, Limit: limit, Offset: offset})
}

// Get handles GET /admin/reports/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	rep, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if err == ErrReportNotFound {
			response.NotFound(w, "Report not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewResponse(rep, h.service.AttachmentURL))
}

// UpdateStatus handles PATCH /admin/reports/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid report ID")
		return
	}

	var req UpdateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	rep, err := h.service.UpdateStatus(r.Context(), middleware.GetUserID(r.Context()), tokenMeta(r), id, Status(req.Status))
	if err != nil {
		switch err {
		case ErrNotAuthorized:
			response.Forbidden(w, err.Error())
		case ErrReportNotFound:
			response.NotFound(w, "Report not found")
		case ErrInvalidStatus:
			response.BadRequest(w, "Unknown status")
		case ErrInvalidTransition:
			response.Conflict(w, "Status transition not allowed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewResponse(rep, h.service.AttachmentURL))
}

func (h *Handler) toResponses(reports []*Report) []*Response {
	out := make([]*Response, 0, len(reports))
	for _, rep := range reports {
		out = append(out, NewResponse(rep, h.service.AttachmentURL))
	}
	return out
}

func tokenMeta(r *http.Request) admin.TokenMeta {
	return admin.TokenMeta{
		Role:  middleware.GetRole(r.Context()),
		Email: middleware.GetEmail(r.Context()),
	}
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
