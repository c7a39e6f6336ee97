package assistant

import (
	"context"
	"strings"

	"github.com/Rai-jal/citizen-voice-api/internal/pkg/openai"
)

const (
	// systemPrompt frames every assistant conversation.
	systemPrompt = "You are a helpful assistant for a citizen services app. " +
		"You help residents report local issues, find city services and " +
		"understand civic processes. Answer briefly and practically. If a " +
		"question is outside civic matters, politely steer the user back."

	maxHistoryTurns = 10
	chatMaxTokens   = 500
	chatTemperature = 0.7

	translateTemperature = 0.3
)

// AI is the slice of the OpenAI client the assistant needs.
type AI interface {
	Configured() bool
	ChatCompletion(ctx context.Context, messages []openai.Message, maxTokens int, temperature float64) (string, *openai.Usage, error)
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}

// Service proxies assistant requests to the AI provider. It keeps no
// conversation state; clients send their own history.
type Service struct {
	ai AI
}

// NewService creates assistant service
func NewService(ai AI) *Service {
	return &Service{ai: ai}
}

// Chat sends the user message with capped history to the model.
func (s *Service) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	history := req.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	messages := make([]openai.Message, 0, len(history)+2)
	messages = append(messages, openai.Message{Role: "system", Content: systemPrompt})
	for _, m := range history {
		if m.Role != "user" && m.Role != "assistant" {
			continue
		}
		messages = append(messages, m)
	}
	messages = append(messages, openai.Message{Role: "user", Content: req.Message})

	reply, usage, err := s.ai.ChatCompletion(ctx, messages, chatMaxTokens, chatTemperature)
	if err != nil {
		return nil, err
	}
	return &ChatResponse{Message: reply, Usage: usage}, nil
}

// Translate renders text into the target language. English targets are
// short-circuited so unchanged text never costs a round trip.
func (s *Service) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	target := strings.TrimSpace(req.TargetLanguage)

	if isEnglish(target) {
		return &TranslateResponse{
			TranslatedText: req.Text,
			SourceLanguage: "en",
			TargetLanguage: "en",
		}, nil
	}

	messages := []openai.Message{
		{Role: "system", Content: "You are a translator. Translate the user's text into " +
			target + ". Respond with the translation only, no commentary."},
		{Role: "user", Content: req.Text},
	}

	translated, _, err := s.ai.ChatCompletion(ctx, messages, 0, translateTemperature)
	if err != nil {
		return nil, err
	}

	return &TranslateResponse{
		TranslatedText: translated,
		SourceLanguage: "auto",
		TargetLanguage: target,
	}, nil
}

// Transcribe converts audio to text.
func (s *Service) Transcribe(ctx context.Context, audio []byte, format string) (*TranscribeResponse, error) {
	text, err := s.ai.Transcribe(ctx, audio, format)
	if err != nil {
		return nil, err
	}
	return &TranscribeResponse{Text: text}, nil
}

func isEnglish(lang string) bool {
	switch strings.ToLower(lang) {
	case "en", "eng", "english":
		return true
	}
	return false
}
