package assistant

import "github.com/Rai-jal/citizen-voice-api/internal/pkg/openai"

// ChatRequest is one turn of the assistant conversation
type ChatRequest struct {
	Message string           `json:"message" validate:"required,max=4000"`
	History []openai.Message `json:"history" validate:"omitempty,dive"`
}

// ChatResponse carries the assistant reply
type ChatResponse struct {
	Message string        `json:"message"`
	Usage   *openai.Usage `json:"usage,omitempty"`
}

// TranslateRequest asks for a translation
type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=5000"`
	TargetLanguage string `json:"target_language" validate:"required,max=50"`
}

// TranslateResponse carries the translated text
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// TranscribeRequest carries base64-encoded audio
type TranscribeRequest struct {
	Audio  string `json:"audio" validate:"required"`
	Format string `json:"format" validate:"omitempty,max=10"`
}

// TranscribeResponse carries the transcript
type TranscribeResponse struct {
	Text string `json:"text"`
}
