// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"blog/internal/domain/entity"
)

// --- Input DTOs ---

// FileInput is an uploaded file handed over by the delivery layer.
type FileInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Avatar   *FileInput
}

// UpdateProfileInput defines the editable profile fields.
type UpdateProfileInput struct {
	Username string
	Email    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the access token generated after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uint) (*entity.UserWithPosts, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*entity.UserWithPosts, error)

	// ChangePassword and UpdateProfile only act on the subject's own account.
	ChangePassword(ctx context.Context, subject, id uint, newPassword string) error
	UpdateProfile(ctx context.Context, subject, id uint, input *UpdateProfileInput) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout has nothing to revoke since access tokens are stateless.
	Logout(ctx context.Context, subject uint) error
}
