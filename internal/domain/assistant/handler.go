package assistant

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/openai"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/response"
	"github.com/Rai-jal/citizen-voice-api/internal/pkg/validator"
)

// Handler handles assistant HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates assistant handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Chat handles POST /assistant/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		h.writeProviderError(w, err, "chat")
		return
	}
	response.OK(w, resp)
}

// Translate handles POST /assistant/translate
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	resp, err := h.service.Translate(r.Context(), &req)
	if err != nil {
		h.writeProviderError(w, err, "translate")
		return
	}
	response.OK(w, resp)
}

// Transcribe handles POST /assistant/transcribe
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req TranscribeRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	audio, err := base64.StdEncoding.DecodeString(req.Audio)
	if err != nil {
		response.BadRequest(w, "Audio must be base64 encoded")
		return
	}

	resp, err := h.service.Transcribe(r.Context(), audio, req.Format)
	if err != nil {
		h.writeProviderError(w, err, "transcribe")
		return
	}
	response.OK(w, resp)
}

// writeProviderError maps AI failures to stable client messages.
func (h *Handler) writeProviderError(w http.ResponseWriter, err error, op string) {
	var provErr *openai.ProviderError
	switch {
	case errors.Is(err, openai.ErrNotConfigured):
		response.Error(w, http.StatusServiceUnavailable, "AI_NOT_CONFIGURED",
			"AI assistant is not configured")
	case errors.As(err, &provErr):
		log.Warn().Int("status", provErr.Status).Str("op", op).
			Msg("ai provider error")
		response.BadGateway(w, "AI provider request failed")
	default:
		log.Error().Err(err).Str("op", op).Msg("assistant request failed")
		response.InternalError(w)
	}
}
