package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/sanitize"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	postRepo    *mockRepo.MockPostRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	fx := commentServiceFixtures{
		commentRepo: mockRepo.NewMockCommentRepository(t),
		postRepo:    mockRepo.NewMockPostRepository(t),
	}

	fx.service = NewCommentService(CommentServiceParams{
		CommentRepo: fx.commentRepo,
		PostRepo:    fx.postRepo,
		Sanitizer:   sanitize.New(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCommentService_AddComment(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.PostID == 10 && c.UserID == 2 && c.Content == "nice post"
	})).Return(nil)

	comment, err := fx.service.AddComment(ctx, 2, 10, "<b>nice</b> post")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
}

func TestCommentService_AddComment_MissingPost(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.commentRepo.On("Create", ctx, mock.Anything).Return(errors.Wrap(repository.ErrNotFound, "fk"))

	_, err := fx.service.AddComment(ctx, 2, 99, "hello")
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound), "got %v", err)
}

func TestCommentService_AddComment_Rejected(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	_, err := fx.service.AddComment(ctx, 0, 10, "hello")
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))

	_, err = fx.service.AddComment(ctx, 2, 10, "   ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCommentService_ListComments(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	comments := []*entity.Comment{{ID: 1, PostID: 10}}

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(&entity.Post{ID: 10}, nil)
	fx.commentRepo.On("ListByPost", ctx, uint(10), 5, 50).Return(comments, nil)

	got, err := fx.service.ListComments(ctx, 10, 5, 500)
	require.NoError(t, err)
	assert.Equal(t, comments, got)

	fx.postRepo.On("FindByID", ctx, uint(11)).Return(nil, nil)
	_, err = fx.service.ListComments(ctx, 11, 0, 0)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_DeleteComment(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	fx.commentRepo.On("FindByID", ctx, uint(1)).Return(&entity.Comment{ID: 1, UserID: 2}, nil)

	err := fx.service.DeleteComment(ctx, 3, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	fx.commentRepo.On("Delete", ctx, uint(1)).Return(nil)
	assert.NoError(t, fx.service.DeleteComment(ctx, 2, 1))

	fx.commentRepo.On("FindByID", ctx, uint(2)).Return(nil, nil)
	err = fx.service.DeleteComment(ctx, 2, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}
