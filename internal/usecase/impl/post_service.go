package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

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

// postService implements the PostUsecase interface.
type postService struct {
	postRepo      repository.PostRepository
	sanitizer     service.ContentSanitizer
	storage       service.FileStorage
	maxImageBytes int64
	pages         pageBounds
	now           func() time.Time
	logger        *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo  repository.PostRepository
	Sanitizer service.ContentSanitizer
	Storage   service.FileStorage
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	var maxImageBytes int64
	if params.Config != nil && params.Config.Storage != nil {
		maxImageBytes = params.Config.Storage.MaxAvatarBytes
	}

	return &postService{
		postRepo:      params.PostRepo,
		sanitizer:     params.Sanitizer,
		storage:       params.Storage,
		maxImageBytes: maxImageBytes,
		pages:         newPageBounds(params.Config),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost stores a new post owned by subject.
func (srv *postService) CreatePost(ctx context.Context, subject uint, draft *entity.PostDraft) (*entity.Post, error) {
	if subject == 0 {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "creating a post requires an authenticated user")
	}

	clean, err := srv.cleanDraft(draft)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:     clean.Title,
		ShortDesc: clean.ShortDesc,
		Desc:      clean.Desc,
		CreatedAt: srv.now().UTC(),
		CreatedBy: subject,
		Images:    []*entity.PostImage{},
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, storeError(err, "failed to create post", domainerrors.ErrUserNotFound, nil)
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("userID", subject))

	return post, nil
}

func (srv *postService) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	return srv.findPost(ctx, id)
}

func (srv *postService) ListPosts(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	offset, limit = srv.pages.clamp(offset, limit)

	posts, err := srv.postRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, storeError(err, "failed to list posts", nil, nil)
	}

	return posts, nil
}

// UpdatePost replaces the text fields of a post owned by subject.
func (srv *postService) UpdatePost(ctx context.Context, subject, id uint, draft *entity.PostDraft) (*entity.Post, error) {
	post, err := srv.findPostFor(ctx, subject, id, entity.PostActionUpdate)
	if err != nil {
		return nil, err
	}

	clean, err := srv.cleanDraft(draft)
	if err != nil {
		return nil, err
	}

	post.Title = clean.Title
	post.ShortDesc = clean.ShortDesc
	post.Desc = clean.Desc
	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, storeError(err, "failed to update post", domainerrors.ErrPostNotFound, nil)
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", id), slog.Any("userID", subject))

	return post, nil
}

func (srv *postService) DeletePost(ctx context.Context, subject, id uint) error {
	if _, err := srv.findPostFor(ctx, subject, id, entity.PostActionDelete); err != nil {
		return err
	}

	if err := srv.postRepo.Delete(ctx, id); err != nil {
		return storeError(err, "failed to delete post", domainerrors.ErrPostNotFound, nil)
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id), slog.Any("userID", subject))

	return nil
}

// LikePost adds subject to the post's like set and returns the refreshed post.
func (srv *postService) LikePost(ctx context.Context, subject, id uint) (*entity.Post, error) {
	if _, err := srv.findPostFor(ctx, subject, id, entity.PostActionLike); err != nil {
		return nil, err
	}

	if err := srv.postRepo.AddLike(ctx, id, subject); err != nil {
		return nil, storeError(err, "failed to like post", domainerrors.ErrPostNotFound, nil)
	}

	return srv.findPost(ctx, id)
}

// UnlikePost removes subject from the post's like set and returns the refreshed post.
func (srv *postService) UnlikePost(ctx context.Context, subject, id uint) (*entity.Post, error) {
	if _, err := srv.findPostFor(ctx, subject, id, entity.PostActionLike); err != nil {
		return nil, err
	}

	if err := srv.postRepo.RemoveLike(ctx, id, subject); err != nil {
		return nil, storeError(err, "failed to unlike post", domainerrors.ErrPostNotFound, nil)
	}

	return srv.findPost(ctx, id)
}

// AttachImage uploads an image and links it to a post owned by subject.
func (srv *postService) AttachImage(ctx context.Context, subject, id uint, file *usecase.FileInput) (*entity.PostImage, error) {
	if _, err := srv.findPostFor(ctx, subject, id, entity.PostActionAttachImage); err != nil {
		return nil, err
	}
	if err := validateImage(file, srv.maxImageBytes); err != nil {
		return nil, err
	}

	key := objectKey("posts/"+strconv.FormatUint(uint64(id), 10), file.Filename)
	url, err := srv.storage.Save(ctx, key, file.ContentType, file.Content)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "failed to store post image: "+err.Error())
	}

	image := &entity.PostImage{PostID: id, URL: url}
	if err := srv.postRepo.AddImage(ctx, image); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned post image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, storeError(err, "failed to attach post image", domainerrors.ErrPostNotFound, nil)
	}

	srv.log(ctx).Info("Post image attached", slog.Any("postID", id), slog.Any("imageID", image.ID))

	return image, nil
}

func (srv *postService) findPost(ctx context.Context, id uint) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "failed to find post", nil, nil)
	}
	if post == nil {
		return nil, errors.Wrapf(domainerrors.ErrPostNotFound, "post %d", id)
	}

	return post, nil
}

// findPostFor loads a post and runs the ownership policy for action.
// An anonymous subject is rejected before the store is queried.
func (srv *postService) findPostFor(ctx context.Context, subject, id uint, action entity.PostAction) (*entity.Post, error) {
	if subject == 0 {
		return nil, errors.Wrapf(domainerrors.ErrMissingCredentials, "%s requires an authenticated user", action)
	}

	post, err := srv.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authorizePostMutation(subject, post, action); err != nil {
		srv.log(ctx).Warn("Post mutation rejected", slog.Any("postID", id), slog.Any("userID", subject), slog.String("action", string(action)))

		return nil, err
	}

	return post, nil
}

// cleanDraft sanitizes the text fields. Title and short description become plain text.
func (srv *postService) cleanDraft(draft *entity.PostDraft) (*entity.PostDraft, error) {
	if draft == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("post body is required"), "missing post draft")
	}

	clean := &entity.PostDraft{
		Title:     srv.sanitizer.PlainText(draft.Title),
		ShortDesc: srv.sanitizer.PlainText(draft.ShortDesc),
		Desc:      srv.sanitizer.RichText(draft.Desc),
	}
	if clean.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("title is required"), "empty post title")
	}

	return clean, nil
}
