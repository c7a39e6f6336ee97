package validator

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AttachmentType is the coarse file classification stored with every
// attachment row.
type AttachmentType string

const (
	TypeDocument AttachmentType = "document"
	TypeImage    AttachmentType = "image"
	TypeVideo    AttachmentType = "video"
	TypeAudio    AttachmentType = "audio"
)

// extensionTypes maps lowercase file extensions to their coarse type.
var extensionTypes = map[string]AttachmentType{
	"jpg": TypeImage, "jpeg": TypeImage, "png": TypeImage, "gif": TypeImage, "webp": TypeImage,
	"mp4": TypeVideo, "mov": TypeVideo, "avi": TypeVideo, "mkv": TypeVideo, "webm": TypeVideo,
	"mp3": TypeAudio, "wav": TypeAudio, "m4a": TypeAudio, "aac": TypeAudio, "ogg": TypeAudio,
	"pdf": TypeDocument, "doc": TypeDocument, "docx": TypeDocument, "txt": TypeDocument, "rtf": TypeDocument,
}

// AllAttachmentTypes lists every allowed coarse type.
func AllAttachmentTypes() []AttachmentType {
	return []AttachmentType{TypeImage, TypeVideo, TypeAudio, TypeDocument}
}

// FileTypeFor classifies a file by its extension. The second return
// value is false when the extension is unknown or missing.
func FileTypeFor(filename string) (AttachmentType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "", false
	}
	t, ok := extensionTypes[ext]
	return t, ok
}

// ValidateFileType checks that a filename resolves to one of the
// allowed coarse types and returns that type.
func ValidateFileType(filename string, allowed ...AttachmentType) (AttachmentType, error) {
	if len(allowed) == 0 {
		allowed = AllAttachmentTypes()
	}

	t, ok := FileTypeFor(filename)
	if !ok {
		return "", fmt.Errorf("invalid file type for %q", filename)
	}

	for _, a := range allowed {
		if t == a {
			return t, nil
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("file type not allowed. Allowed types: %s", strings.Join(names, ", "))
}

// ValidateFileSize checks a file size in bytes against a ceiling in MB.
func ValidateFileSize(size int64, maxSizeMB int64) error {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if size > maxSizeMB*1024*1024 {
		return fmt.Errorf("file size must be less than %dMB", maxSizeMB)
	}
	return nil
}
