package impl

import (
	"io"
	"log/slog"

	"blog/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 10,
		},
		Storage: &config.StorageConfig{
			BucketURL:      "mem://",
			MaxAvatarBytes: 1 << 10,
		},
		Pagination: &config.PaginationConfig{
			DefaultLimit: 20,
			MaxLimit:     50,
		},
	}
}
