package postgres

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/errors"
	"blog/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postColumns selects every post column plus its like count.
const postColumns = "posts.*, (SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS likes"

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// posts starts a query that loads posts with their like counts and images.
func (repo *postRepository) posts(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Select(postColumns).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		})
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrNotFound, "post author does not exist")
		}

		return translateError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindByID retrieves a single post with its like count and images.
func (repo *postRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.posts(ctx).Where("posts.id = ?", id).First(&postM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, translateError(err, "failed to find post")
	}

	return toPostDomain(&postM), nil
}

// List returns a page of posts ordered by ID.
func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.posts(ctx).
		Order("posts.id").
		Offset(offset).
		Limit(limit).
		Find(&postMs).Error
	if err != nil {
		return nil, translateError(err, "failed to list posts")
	}

	return toPostsDomain(postMs), nil
}

// ListByAuthors returns every post created by one of the given users.
func (repo *postRepository) ListByAuthors(ctx context.Context, userIDs []uint) ([]*entity.Post, error) {
	if len(userIDs) == 0 {
		return []*entity.Post{}, nil
	}

	var postMs []*model.PostModel
	err := repo.posts(ctx).
		Where("posts.created_by IN ?", userIDs).
		Order("posts.id").
		Find(&postMs).Error
	if err != nil {
		return nil, translateError(err, "failed to list posts by authors")
	}

	return toPostsDomain(postMs), nil
}

// Update saves the editable fields of a post.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(postM).
		Select("Title", "ShortDesc", "Desc", "UpdatedAt").
		Updates(postM)
	if result.Error != nil {
		return translateError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a post. Likes, comments and images go with it through ON DELETE CASCADE.
func (repo *postRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return translateError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// AddLike records a like. The composite primary key makes a repeated like a no-op.
func (repo *postRepository) AddLike(ctx context.Context, postID, userID uint) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PostLikeModel{PostID: postID, UserID: userID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrNotFound, "liked post does not exist")
		}

		return translateError(err, "failed to add like")
	}

	return nil
}

// RemoveLike deletes a like if present.
func (repo *postRepository) RemoveLike(ctx context.Context, postID, userID uint) error {
	err := repo.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLikeModel{}).Error
	if err != nil {
		return translateError(err, "failed to remove like")
	}

	return nil
}

// AddImage attaches an image URL to a post.
func (repo *postRepository) AddImage(ctx context.Context, image *entity.PostImage) error {
	imageM := &model.PostImageModel{
		PostID: image.PostID,
		URL:    image.URL,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrNotFound, "image post does not exist")
		}

		return translateError(err, "failed to add post image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	images := make([]*entity.PostImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, &entity.PostImage{
			ID:        img.ID,
			PostID:    img.PostID,
			URL:       img.URL,
			CreatedAt: img.CreatedAt,
		})
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		ShortDesc: data.ShortDesc,
		Desc:      data.Desc,
		CreatedAt: data.CreatedAt,
		CreatedBy: data.CreatedBy,
		Likes:     data.Likes,
		Images:    images,
	}
}

func toPostsDomain(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, postM := range data {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		ShortDesc: data.ShortDesc,
		Desc:      data.Desc,
		CreatedBy: data.CreatedBy,
		CreatedAt: data.CreatedAt,
	}
}
