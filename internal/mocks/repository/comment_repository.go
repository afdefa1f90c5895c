package repository

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock implementation of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a mock and asserts its expectations when the test ends.
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	args := m.Called(ctx, id)
	comment, _ := args.Get(0).(*entity.Comment)

	return comment, args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, offset, limit)
	comments, _ := args.Get(0).([]*entity.Comment)

	return comments, args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
