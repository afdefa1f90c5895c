package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// CommentRepository defines persistence operations for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error)
	Delete(ctx context.Context, id uint) error
}
