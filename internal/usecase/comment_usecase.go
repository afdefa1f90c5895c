package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// CommentUsecase defines the interface for comments on posts.
type CommentUsecase interface {
	AddComment(ctx context.Context, subject, postID uint, content string) (*entity.Comment, error)
	ListComments(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error)

	// DeleteComment is allowed for the comment author only.
	DeleteComment(ctx context.Context, subject, id uint) error
}
