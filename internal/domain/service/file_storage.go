package service

import (
	"context"
	"io"
)

// FileStorage stores user uploads and serves them back by key.
type FileStorage interface {
	// Save writes r under key and returns the public URL of the stored object.
	Save(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open returns a reader for key along with its content type. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
