// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
//
// Finders report absence as a nil entity with a nil error. Errors are reserved for
// the store failures below and for unexpected driver errors.
package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

var (
	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("store: unique constraint conflict")

	// ErrNotFound is returned when an update or delete matched no row.
	ErrNotFound = errors.New("store: record not found")

	// ErrUnavailable is returned when the store cannot be reached.
	ErrUnavailable = errors.New("store: unavailable")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by an exact, case-sensitive email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns a page of users ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*entity.User, error)

	// Create persists a new user and sets its ID. Duplicate username or email yields ErrConflict.
	Create(ctx context.Context, user *entity.User) error

	// Each update below writes only its own columns in a single statement, so concurrent
	// profile and password changes never overwrite each other. A missing user yields ErrNotFound.

	// UpdateProfile sets username and email. Duplicates yield ErrConflict.
	UpdateProfile(ctx context.Context, id uint, username, email string) error

	// UpdatePassword sets the password hash unconditionally.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error

	// ReplacePasswordHash swaps current for upgraded only while the stored hash is still current.
	// It reports false when the hash changed in the meantime or the user is gone.
	ReplacePasswordHash(ctx context.Context, id uint, current, upgraded string) (bool, error)
}
