package postgres

import (
	"context"
	"database/sql"

	"blog/internal/errors"
	"blog/migrations"

	"github.com/pressly/goose/v3"
)

// Migrate applies the embedded goose migrations that have not run yet.
func Migrate(ctx context.Context, sqlDB *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
