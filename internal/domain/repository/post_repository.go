package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// PostRepository defines persistence operations for posts, their likes and images.
type PostRepository interface {
	// Create persists a new post and sets its ID.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post with its like count and images.
	FindByID(ctx context.Context, id uint) (*entity.Post, error)

	// List returns a page of posts ordered by ID.
	List(ctx context.Context, offset, limit int) ([]*entity.Post, error)

	// ListByAuthors returns every post created by any of the given users.
	ListByAuthors(ctx context.Context, userIDs []uint) ([]*entity.Post, error)

	// Update saves title, short description and description.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post together with its likes, comments and images.
	Delete(ctx context.Context, id uint) error

	// AddLike records that userID likes postID. Liking twice is a no-op.
	AddLike(ctx context.Context, postID, userID uint) error

	// RemoveLike deletes the like of userID on postID if present.
	RemoveLike(ctx context.Context, postID, userID uint) error

	// AddImage attaches an image to a post and sets its ID.
	AddImage(ctx context.Context, image *entity.PostImage) error
}
