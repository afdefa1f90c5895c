package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// Authenticator verifies login credentials.
type Authenticator interface {
	// Authenticate returns the user owning email when password matches.
	// An unknown email and a wrong password both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
}
