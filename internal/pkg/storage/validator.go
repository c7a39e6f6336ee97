package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	ErrEmptyFile    = errors.New("file is empty")
)

// ValidateAndBuffer reads a file into memory while enforcing the size
// ceiling and sniffs the MIME type from content. Extension checks
// happen earlier at the validation layer; this guards what actually
// gets written to the bucket.
func ValidateAndBuffer(reader io.Reader, maxSize int64) (*bytes.Buffer, string, error) {
	// maxSize+1 so an oversized file is detectable without reading it all
	limitedReader := io.LimitReader(reader, maxSize+1)
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}

	if int64(len(data)) > maxSize {
		return nil, "", ErrFileTooLarge
	}

	mimeType := http.DetectContentType(data)
	// "image/jpeg; charset=utf-8" -> "image/jpeg"
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	return bytes.NewBuffer(data), mimeType, nil
}
