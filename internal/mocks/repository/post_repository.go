package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

// NewMockPostRepository creates a mock and asserts its expectations when the test ends.
func NewMockPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostRepository {
	m := &MockPostRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*entity.Post)

	return post, args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, offset, limit)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostRepository) ListByAuthors(ctx context.Context, userIDs []uint) ([]*entity.Post, error) {
	args := m.Called(ctx, userIDs)
	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostRepository) AddLike(ctx context.Context, postID, userID uint) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID uint) error {
	return m.Called(ctx, postID, userID).Error(0)
}

func (m *MockPostRepository) AddImage(ctx context.Context, image *entity.PostImage) error {
	return m.Called(ctx, image).Error(0)
}
