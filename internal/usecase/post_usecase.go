package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// PostUsecase defines the interface for post-related business operations.
// Mutations take the authenticated subject and pass it through the ownership policy.
type PostUsecase interface {
	CreatePost(ctx context.Context, subject uint, draft *entity.PostDraft) (*entity.Post, error)
	GetPost(ctx context.Context, id uint) (*entity.Post, error)
	ListPosts(ctx context.Context, offset, limit int) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, subject, id uint, draft *entity.PostDraft) (*entity.Post, error)
	DeletePost(ctx context.Context, subject, id uint) error
	LikePost(ctx context.Context, subject, id uint) (*entity.Post, error)
	UnlikePost(ctx context.Context, subject, id uint) (*entity.Post, error)
	AttachImage(ctx context.Context, subject, id uint, file *FileInput) (*entity.PostImage, error)
}
