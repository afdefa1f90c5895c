package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockPostUsecase is a mock implementation of usecase.PostUsecase.
type MockPostUsecase struct {
	mock.Mock
}

// NewMockPostUsecase creates a mock and asserts its expectations when the test ends.
func NewMockPostUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostUsecase {
	m := &MockPostUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, subject uint, draft *entity.PostDraft) (*entity.Post, error) {
	args := m.Called(ctx, subject, draft)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostUsecase) GetPost(ctx context.Context, id uint) (*entity.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, offset, limit)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostUsecase) UpdatePost(ctx context.Context, subject, id uint, draft *entity.PostDraft) (*entity.Post, error) {
	args := m.Called(ctx, subject, id, draft)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostUsecase) DeletePost(ctx context.Context, subject, id uint) error {
	return m.Called(ctx, subject, id).Error(0)
}

func (m *MockPostUsecase) LikePost(ctx context.Context, subject, id uint) (*entity.Post, error) {
	args := m.Called(ctx, subject, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostUsecase) UnlikePost(ctx context.Context, subject, id uint) (*entity.Post, error) {
	args := m.Called(ctx, subject, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostUsecase) AttachImage(ctx context.Context, subject, id uint, file *usecase.FileInput) (*entity.PostImage, error) {
	args := m.Called(ctx, subject, id, file)
	image, _ := args.Get(0).(*entity.PostImage)

	return image, args.Error(1)
}
