// Package impl contains the implementation of the application's business logic.
package impl

import (
	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/errors"
)

// storeError converts a repository failure into the error surfaced to the caller.
// notFound is used for repository.ErrNotFound and conflict for repository.ErrConflict.
func storeError(err error, message string, notFound, conflict *domainerrors.BaseError) error {
	switch {
	case errors.Is(err, repository.ErrNotFound) && notFound != nil:
		return errors.Wrap(notFound, message)
	case errors.Is(err, repository.ErrConflict) && conflict != nil:
		return errors.Wrap(conflict, message)
	case errors.Is(err, repository.ErrUnavailable):
		return errors.Wrap(domainerrors.ErrStoreUnavailable, message+": "+err.Error())
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

// pageBounds clamps list pagination to the configured limits.
type pageBounds struct {
	defaultLimit int
	maxLimit     int
}

func newPageBounds(cfg *config.Config) pageBounds {
	bounds := pageBounds{defaultLimit: 100, maxLimit: 100}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultLimit > 0 {
			bounds.defaultLimit = cfg.Pagination.DefaultLimit
		}
		if cfg.Pagination.MaxLimit > 0 {
			bounds.maxLimit = cfg.Pagination.MaxLimit
		}
	}

	return bounds
}

func (b pageBounds) clamp(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = b.defaultLimit
	}
	if limit > b.maxLimit {
		limit = b.maxLimit
	}

	return offset, limit
}
