package storage

import (
	"context"
	"io"
)

// Storage is the minimal interface a bucket backend must satisfy.
// One instance per bucket: report attachments, fact-check evidence and
// news images each get their own.
type Storage interface {
	// Put stores an object under key.
	Put(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Get retrieves an object by key.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Exists reports whether an object is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetURL returns the public URL for a stored object.
	GetURL(key string) string
}
