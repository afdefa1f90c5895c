package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type authenticator struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger

	// dummyHash is checked against when the email is unknown so both failure paths cost one bcrypt comparison.
	dummyHash string
}

// AuthenticatorParams holds dependencies for the authenticator, injected by Fx.
type AuthenticatorParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewAuthenticator is the constructor for authenticator.
func NewAuthenticator(params AuthenticatorParams) (usecase.Authenticator, error) {
	dummyHash, err := params.Hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare dummy password hash")
	}

	return &authenticator{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
		dummyHash: dummyHash,
	}, nil
}

func (a *authenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Authenticate matches email exactly, so it is case-sensitive like the users.email column.
// The returned user never carries the password hash.
func (a *authenticator) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err, "failed to look up user by email", nil, nil)
	}

	if user == nil {
		a.hasher.Check(password, a.dummyHash)
		a.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		a.log(ctx).Warn("Authentication failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	if a.hasher.NeedsRehash(user.PasswordHash) {
		a.upgradeHash(ctx, user, password)
	}

	authenticated := *user
	authenticated.PasswordHash = ""

	return &authenticated, nil
}

// upgradeHash rehashes the password with the current cost. Failures are logged and do not fail the login.
func (a *authenticator) upgradeHash(ctx context.Context, user *entity.User, password string) {
	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.log(ctx).Warn("Password rehash failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	// A password changed since this login read the row must not be reverted.
	replaced, err := a.userRepo.ReplacePasswordHash(ctx, user.ID, user.PasswordHash, hash)
	if err != nil {
		a.log(ctx).Warn("Storing rehashed password failed", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}
	if !replaced {
		a.log(ctx).Debug("Password hash changed concurrently, skipping upgrade", slog.Any("userID", user.ID))

		return
	}

	a.log(ctx).Info("Password hash upgraded", slog.Any("userID", user.ID))
}
