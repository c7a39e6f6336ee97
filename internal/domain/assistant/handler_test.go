package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/openai"
)

type stubAI struct {
	reply string
	err   error
}

func (s *stubAI) Configured() bool { return s.err == nil }

func (s *stubAI) ChatCompletion(ctx context.Context, messages []openai.Message, maxTokens int, temperature float64) (string, *openai.Usage, error) {
	return s.reply, nil, s.err
}

func (s *stubAI) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	return s.reply, s.err
}

func serveChat(t *testing.T, ai AI, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(NewService(ai))
	r := Routes(handler)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestChatEndpointOK(t *testing.T) {
	rr := serveChat(t, &stubAI{reply: "hi there"}, `{"message":"hello"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.Message != "hi there" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	rr := serveChat(t, &stubAI{reply: "x"}, `{"message":""}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
}

func TestChatEndpointNotConfigured(t *testing.T) {
	rr := serveChat(t, &stubAI{err: openai.ErrNotConfigured}, `{"message":"hello"}`)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "AI_NOT_CONFIGURED") {
		t.Fatalf("expected stable error code, got %s", rr.Body.String())
	}
}

func TestChatEndpointProviderError(t *testing.T) {
	ai := &stubAI{err: &openai.ProviderError{Status: 500, Message: "upstream broke"}}
	rr := serveChat(t, ai, `{"message":"hello"}`)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
}

func TestTranscribeEndpointRejectsBadBase64(t *testing.T) {
	handler := NewHandler(NewService(&stubAI{reply: "text"}))
	r := Routes(handler)

	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(`{"audio":"%%%not-base64%%%","format":"m4a"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestTranscribeEndpointOK(t *testing.T) {
	handler := NewHandler(NewService(&stubAI{reply: "spoken"}))
	r := Routes(handler)

	req := httptest.NewRequest(http.MethodPost, "/transcribe", strings.NewReader(`{"audio":"aGVsbG8=","format":"m4a"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "spoken") {
		t.Fatalf("transcript missing from response: %s", rr.Body.String())
	}
}
