package postgres

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		PostID:  comment.PostID,
		UserID:  comment.UserID,
		Content: comment.Content,
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrNotFound, "commented post does not exist")
		}

		return translateError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).First(&commentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, translateError(err, "failed to find comment")
	}

	return toCommentDomain(&commentM), nil
}

// ListByPost returns comments of a post, oldest first.
func (repo *commentRepository) ListByPost(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error) {
	var commentMs []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&commentMs).Error
	if err != nil {
		return nil, translateError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for _, commentM := range commentMs {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

func (repo *commentRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:        data.ID,
		PostID:    data.PostID,
		UserID:    data.UserID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
