package impl

import (
	"context"
	"log/slog"

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

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	sanitizer   service.ContentSanitizer
	pages       pageBounds
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Sanitizer   service.ContentSanitizer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		sanitizer:   params.Sanitizer,
		pages:       newPageBounds(params.Config),
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *commentService) AddComment(ctx context.Context, subject, postID uint, content string) (*entity.Comment, error) {
	if subject == 0 {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "commenting requires an authenticated user")
	}

	content = srv.sanitizer.PlainText(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("comment content is required"), "empty comment")
	}

	comment := &entity.Comment{
		PostID:  postID,
		UserID:  subject,
		Content: content,
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, storeError(err, "failed to create comment", domainerrors.ErrPostNotFound, nil)
	}

	srv.log(ctx).Info("Comment added", slog.Any("commentID", comment.ID), slog.Any("postID", postID))

	return comment, nil
}

func (srv *commentService) ListComments(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, storeError(err, "failed to find post", nil, nil)
	}
	if post == nil {
		return nil, errors.Wrapf(domainerrors.ErrPostNotFound, "post %d", postID)
	}

	offset, limit = srv.pages.clamp(offset, limit)
	comments, err := srv.commentRepo.ListByPost(ctx, postID, offset, limit)
	if err != nil {
		return nil, storeError(err, "failed to list comments", nil, nil)
	}

	return comments, nil
}

func (srv *commentService) DeleteComment(ctx context.Context, subject, id uint) error {
	if subject == 0 {
		return errors.Wrap(domainerrors.ErrMissingCredentials, "deleting a comment requires an authenticated user")
	}

	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		return storeError(err, "failed to find comment", nil, nil)
	}
	if comment == nil {
		return errors.Wrapf(domainerrors.ErrCommentNotFound, "comment %d", id)
	}
	if comment.UserID != subject {
		return errors.Wrapf(domainerrors.ErrForbidden, "user %d cannot delete comment %d", subject, id)
	}

	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		return storeError(err, "failed to delete comment", domainerrors.ErrCommentNotFound, nil)
	}

	return nil
}
