package impl

import (
	"context"
	"strings"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/sanitize"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
	storage  *mockSvc.MockFileStorage
}

func createTestPostService(t *testing.T) postServiceFixtures {
	fx := postServiceFixtures{
		postRepo: mockRepo.NewMockPostRepository(t),
		storage:  mockSvc.NewMockFileStorage(t),
	}

	fx.service = NewPostService(PostServiceParams{
		PostRepo:  fx.postRepo,
		Sanitizer: sanitize.New(),
		Storage:   fx.storage,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return fx
}

func TestPostService_CreatePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("Create", ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Post).ID = 10
		}).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, 1, &entity.PostDraft{
		Title:     "<b>Hello</b>",
		ShortDesc: "first <i>post</i>",
		Desc:      `<p>body</p><script>alert(1)</script>`,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(10), post.ID)
	assert.Equal(t, uint(1), post.CreatedBy)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, "first post", post.ShortDesc)
	assert.Equal(t, "<p>body</p>", post.Desc)
}

func TestPostService_CreatePost_Rejected(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.CreatePost(ctx, 0, &entity.PostDraft{Title: "t"})
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))

	_, err = fx.service.CreatePost(ctx, 1, &entity.PostDraft{Title: "<script>x</script>"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("FindByID", ctx, uint(99)).Return(nil, nil)

	_, err := fx.service.GetPost(ctx, 99)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_GetPost_StoreUnavailable(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("FindByID", ctx, uint(1)).Return(nil, errors.Wrap(repository.ErrUnavailable, "timeout"))

	_, err := fx.service.GetPost(ctx, 1)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable), "got %v", err)
}

func TestPostService_ListPosts_DefaultLimit(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	posts := []*entity.Post{{ID: 1}}

	fx.postRepo.On("List", ctx, 0, 20).Return(posts, nil)

	got, err := fx.service.ListPosts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_UpdatePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: 10, Title: "old", CreatedBy: 1}

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(post, nil)

	_, err := fx.service.UpdatePost(ctx, 2, 10, &entity.PostDraft{Title: "hijack"})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden), "got %v", err)
	assert.Equal(t, "old", post.Title)

	fx.postRepo.On("Update", ctx, post).Return(nil)
	updated, err := fx.service.UpdatePost(ctx, 1, 10, &entity.PostDraft{Title: "new", Desc: "<em>text</em>"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "<em>text</em>", updated.Desc)
}

func TestPostService_DeletePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: 10, CreatedBy: 1}

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(post, nil)

	err := fx.service.DeletePost(ctx, 2, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	fx.postRepo.On("Delete", ctx, uint(10)).Return(nil)
	assert.NoError(t, fx.service.DeletePost(ctx, 1, 10))
}

func TestPostService_DeletePost_Anonymous(t *testing.T) {
	fx := createTestPostService(t)

	err := fx.service.DeletePost(context.Background(), 0, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
}

func TestPostService_LikeAndUnlike(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: 10, CreatedBy: 1}
	liked := &entity.Post{ID: 10, CreatedBy: 1, Likes: 1}

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(post, nil).Once()
	fx.postRepo.On("AddLike", ctx, uint(10), uint(2)).Return(nil)
	fx.postRepo.On("FindByID", ctx, uint(10)).Return(liked, nil).Once()

	got, err := fx.service.LikePost(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(liked, nil).Once()
	fx.postRepo.On("RemoveLike", ctx, uint(10), uint(2)).Return(nil)
	fx.postRepo.On("FindByID", ctx, uint(10)).Return(post, nil).Once()

	got, err = fx.service.UnlikePost(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Likes)
}

func TestPostService_AttachImage(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	post := &entity.Post{ID: 10, CreatedBy: 1}
	file := &usecase.FileInput{Filename: "../../etc/cat.png", ContentType: "image/png", Size: 4, Content: strings.NewReader("meow")}

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(post, nil)

	_, err := fx.service.AttachImage(ctx, 2, 10, file)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	fx.storage.On("Save", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "posts/10/") && strings.HasSuffix(key, "-cat.png") && !strings.Contains(key, "..")
	}), "image/png", file.Content).Return("http://localhost/files/posts/10/x-cat.png", nil)
	fx.postRepo.On("AddImage", ctx, mock.AnythingOfType("*entity.PostImage")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.PostImage).ID = 3
		}).
		Return(nil)

	image, err := fx.service.AttachImage(ctx, 1, 10, file)
	require.NoError(t, err)
	assert.Equal(t, uint(3), image.ID)
	assert.Equal(t, uint(10), image.PostID)
	assert.Equal(t, "http://localhost/files/posts/10/x-cat.png", image.URL)
}

func TestPostService_AttachImage_TooLarge(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.On("FindByID", ctx, uint(10)).Return(&entity.Post{ID: 10, CreatedBy: 1}, nil)

	_, err := fx.service.AttachImage(ctx, 1, 10, &usecase.FileInput{
		Filename:    "big.png",
		ContentType: "image/png",
		Size:        1 << 20,
		Content:     strings.NewReader(""),
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
