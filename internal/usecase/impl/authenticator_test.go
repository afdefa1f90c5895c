package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDummyHash = "$2a$10$dummy"

type authenticatorFixtures struct {
	auth     usecase.Authenticator
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestAuthenticator(t *testing.T) authenticatorFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.On("Hash", mock.AnythingOfType("string")).Return(testDummyHash, nil).Once()

	auth, err := NewAuthenticator(AuthenticatorParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})
	require.NoError(t, err)

	return authenticatorFixtures{auth: auth, userRepo: userRepo, hasher: hasher}
}

func TestAuthenticator_Success(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	stored := &entity.User{ID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: "$2a$10$alice"}

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(stored, nil)
	fx.hasher.On("Check", "secret1", "$2a$10$alice").Return(true)
	fx.hasher.On("NeedsRehash", "$2a$10$alice").Return(false)

	user, err := fx.auth.Authenticate(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "authenticated user must not expose the hash")
}

func TestAuthenticator_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	stored := &entity.User{ID: 1, Email: "alice@x.com", PasswordHash: "$2a$10$alice"}

	fx.userRepo.On("FindByEmail", ctx, "nobody@x.com").Return(nil, nil)
	fx.hasher.On("Check", "secret1", testDummyHash).Return(false)
	_, unknownErr := fx.auth.Authenticate(ctx, "nobody@x.com", "secret1")

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(stored, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$alice").Return(false)
	_, wrongErr := fx.auth.Authenticate(ctx, "alice@x.com", "wrong")

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticator_EmailIsCaseSensitive(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "Alice@X.com").Return(nil, nil)
	fx.hasher.On("Check", "secret1", testDummyHash).Return(false)

	_, err := fx.auth.Authenticate(ctx, "Alice@X.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthenticator_UpgradesOutdatedHash(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	stored := &entity.User{ID: 1, Email: "alice@x.com", PasswordHash: "$2a$04$old"}

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(stored, nil)
	fx.hasher.On("Check", "secret1", "$2a$04$old").Return(true)
	fx.hasher.On("NeedsRehash", "$2a$04$old").Return(true)
	fx.hasher.On("Hash", "secret1").Return("$2a$10$new", nil)
	fx.userRepo.On("ReplacePasswordHash", ctx, uint(1), "$2a$04$old", "$2a$10$new").Return(true, nil)

	user, err := fx.auth.Authenticate(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthenticator_UpgradeKeepsConcurrentPasswordChange(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	stored := &entity.User{ID: 1, Email: "alice@x.com", PasswordHash: "$2a$04$old"}

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(stored, nil)
	fx.hasher.On("Check", "secret1", "$2a$04$old").Return(true)
	fx.hasher.On("NeedsRehash", "$2a$04$old").Return(true)
	fx.hasher.On("Hash", "secret1").Return("$2a$10$new", nil)
	// The account changed its password after the row was read; the swap matches nothing.
	fx.userRepo.On("ReplacePasswordHash", ctx, uint(1), "$2a$04$old", "$2a$10$new").Return(false, nil)

	user, err := fx.auth.Authenticate(ctx, "alice@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	fx.userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthenticator_RehashFailureDoesNotFailLogin(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()
	stored := &entity.User{ID: 1, Email: "alice@x.com", PasswordHash: "$2a$04$old"}

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(stored, nil)
	fx.hasher.On("Check", "secret1", "$2a$04$old").Return(true)
	fx.hasher.On("NeedsRehash", "$2a$04$old").Return(true)
	fx.hasher.On("Hash", "secret1").Return("$2a$10$new", nil)
	fx.userRepo.On("ReplacePasswordHash", ctx, uint(1), "$2a$04$old", "$2a$10$new").Return(false, repository.ErrUnavailable)

	_, err := fx.auth.Authenticate(ctx, "alice@x.com", "secret1")
	assert.NoError(t, err)
}

func TestAuthenticator_StoreUnavailable(t *testing.T) {
	fx := createTestAuthenticator(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "alice@x.com").Return(nil, errors.Wrap(repository.ErrUnavailable, "dial tcp"))

	_, err := fx.auth.Authenticate(ctx, "alice@x.com", "secret1")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
