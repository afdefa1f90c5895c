// Package storage keeps uploaded files in a gocloud.dev blob bucket.
// The bucket URL scheme picks the backend: file:// for local disk, mem:// for tests
// and s3:// for object storage.
package storage

import (
	"context"
	"io"
	"log/slog"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// FilesPath is the HTTP path prefix under which stored objects are served.
const FilesPath = "/files/"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.FileStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", params.Config.Storage.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing file storage bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, params.Config.HTTP.PublicBaseURL), nil
}

// NewWithBucket wraps an already opened bucket. baseURL prefixes the returned file URLs.
func NewWithBucket(bucket *blob.Bucket, baseURL string) service.FileStorage {
	return &blobStorage{
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Save streams r into key. A failed read leaves no object behind.
func (s *blobStorage) Save(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	// Closing a writer whose context is canceled aborts the upload instead of committing it.
	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()

		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to commit %s", key)
	}

	return s.baseURL + FilesPath + key, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", domainerrors.ErrNotFound.WrapMessage(key)
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return r, r.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
