package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCommentUsecase is a mock implementation of usecase.CommentUsecase.
type MockCommentUsecase struct {
	mock.Mock
}

// NewMockCommentUsecase creates a mock and asserts its expectations when the test ends.
func NewMockCommentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentUsecase {
	m := &MockCommentUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentUsecase) AddComment(ctx context.Context, subject, postID uint, content string) (*entity.Comment, error) {
	args := m.Called(ctx, subject, postID, content)
	comment, _ := args.Get(0).(*entity.Comment)

	return comment, args.Error(1)
}

func (m *MockCommentUsecase) ListComments(ctx context.Context, postID uint, offset, limit int) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID, offset, limit)
	comments, _ := args.Get(0).([]*entity.Comment)

	return comments, args.Error(1)
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, subject, id uint) error {
	return m.Called(ctx, subject, id).Error(0)
}
