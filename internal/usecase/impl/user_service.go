package impl

import (
	"context"
	"log/slog"
	"strings"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/errors"
	"blog/internal/usecase"

	"go.uber.org/fx"
)

const (
	tokenTypeBearer = "Bearer"
	avatarPrefix    = "avatars"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	authenticator  usecase.Authenticator
	storage        service.FileStorage
	maxAvatarBytes int64
	pages          pageBounds
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	PostRepo      repository.PostRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Authenticator usecase.Authenticator
	Storage       service.FileStorage
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var maxAvatarBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &userService{
		userRepo:       params.UserRepo,
		postRepo:       params.PostRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		authenticator:  params.Authenticator,
		storage:        params.Storage,
		maxAvatarBytes: maxAvatarBytes,
		pages:          newPageBounds(params.Config),
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser stores the avatar, then inserts the user.
// Uniqueness of username and email is left to the store; a conflict removes the stored avatar again.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username, email and password are required"), "invalid registration")
	}

	passwordHash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	var avatarKey string
	if input.Avatar != nil {
		if err := validateImage(input.Avatar, srv.maxAvatarBytes); err != nil {
			return nil, err
		}

		avatarKey = objectKey(avatarPrefix, input.Avatar.Filename)
		user.AvatarURL, err = srv.storage.Save(ctx, avatarKey, input.Avatar.ContentType, input.Avatar.Content)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to store avatar: "+err.Error())
		}
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if avatarKey != "" {
			if delErr := srv.storage.Delete(ctx, avatarKey); delErr != nil {
				srv.log(ctx).Warn("Failed to remove orphaned avatar", slog.String("key", avatarKey), slog.Any("error", delErr))
			}
		}
		srv.log(ctx).Warn("User registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, storeError(err, "failed to create user", nil, domainerrors.ErrUserAlreadyExists)
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return user, nil
}

// GetUser returns the user together with the posts they created.
func (srv *userService) GetUser(ctx context.Context, id uint) (*entity.UserWithPosts, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	posts, err := srv.postRepo.ListByAuthors(ctx, []uint{user.ID})
	if err != nil {
		return nil, storeError(err, "failed to list user posts", nil, nil)
	}

	return &entity.UserWithPosts{User: user, Posts: posts}, nil
}

// ListUsers returns a page of users, each joined with their posts in a single post query.
func (srv *userService) ListUsers(ctx context.Context, offset, limit int) ([]*entity.UserWithPosts, error) {
	offset, limit = srv.pages.clamp(offset, limit)

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, storeError(err, "failed to list users", nil, nil)
	}

	ids := make([]uint, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	posts, err := srv.postRepo.ListByAuthors(ctx, ids)
	if err != nil {
		return nil, storeError(err, "failed to list user posts", nil, nil)
	}

	byAuthor := make(map[uint][]*entity.Post, len(users))
	for _, post := range posts {
		byAuthor[post.CreatedBy] = append(byAuthor[post.CreatedBy], post)
	}

	views := make([]*entity.UserWithPosts, 0, len(users))
	for _, user := range users {
		userPosts := byAuthor[user.ID]
		if userPosts == nil {
			userPosts = []*entity.Post{}
		}
		views = append(views, &entity.UserWithPosts{User: user, Posts: userPosts})
	}

	return views, nil
}

// ChangePassword replaces the password hash of the subject's own account.
func (srv *userService) ChangePassword(ctx context.Context, subject, id uint, newPassword string) error {
	if err := authorizeAccountMutation(subject, id); err != nil {
		return err
	}
	if newPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("new password is required"), "invalid password change")
	}

	passwordHash, err := srv.hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := srv.userRepo.UpdatePassword(ctx, id, passwordHash); err != nil {
		return storeError(err, "failed to update password", domainerrors.ErrUserNotFound, nil)
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", id))

	return nil
}

// UpdateProfile changes username and email of the subject's own account.
func (srv *userService) UpdateProfile(ctx context.Context, subject, id uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if err := authorizeAccountMutation(subject, id); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username and email are required"), "invalid profile update")
	}

	if err := srv.userRepo.UpdateProfile(ctx, id, username, email); err != nil {
		return nil, storeError(err, "failed to update profile", domainerrors.ErrUserNotFound, domainerrors.ErrUserAlreadyExists)
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", id))

	return srv.findUser(ctx, id)
}

// Login authenticates the credentials and issues an access token for the user.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.authenticator.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	accessToken, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to issue access token: "+err.Error())
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   srv.tokenService.TTL(),
		User:        user,
	}, nil
}

// Logout only records the event. The token stays valid until it expires.
func (srv *userService) Logout(ctx context.Context, subject uint) error {
	srv.log(ctx).Info("User logged out", slog.Any("userID", subject))

	return nil
}

func (srv *userService) findUser(ctx context.Context, id uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to find user", nil, nil)
	}
	if user == nil {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", id)
	}

	return user, nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return "", err
		}

		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// authorizeAccountMutation allows a user to modify only their own account.
func authorizeAccountMutation(subject, id uint) error {
	if subject == 0 {
		return errors.Wrap(domainerrors.ErrMissingCredentials, "account change requires an authenticated user")
	}
	if subject != id {
		return errors.Wrapf(domainerrors.ErrForbidden, "user %d cannot modify account %d", subject, id)
	}

	return nil
}
