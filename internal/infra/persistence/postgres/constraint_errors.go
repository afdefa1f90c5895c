package postgres

import (
	"context"
	"net"

	"blog/internal/domain/repository"
	"blog/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// isUnavailable reports failures to reach the database at all, as opposed to a rejected statement.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// translateError maps driver errors onto the repository sentinels, keeping the original message.
func translateError(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrConflict, message+": "+err.Error())
	case isUnavailable(err):
		return errors.Wrap(repository.ErrUnavailable, message+": "+err.Error())
	default:
		return errors.Wrap(err, message)
	}
}
