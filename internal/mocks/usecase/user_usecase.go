package usecase

import (
	"context"

	"blog/internal/domain/entity"
	"blog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock implementation of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock and asserts its expectations when the test ends.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id uint) (*entity.UserWithPosts, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*entity.UserWithPosts)

	return view, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context, offset, limit int) ([]*entity.UserWithPosts, error) {
	args := m.Called(ctx, offset, limit)
	views, _ := args.Get(0).([]*entity.UserWithPosts)

	return views, args.Error(1)
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, subject, id uint, newPassword string) error {
	return m.Called(ctx, subject, id, newPassword).Error(0)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, subject, id uint, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, subject, id, input)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	out, _ := args.Get(0).(*usecase.LoginOutput)

	return out, args.Error(1)
}

func (m *MockUserUsecase) Logout(ctx context.Context, subject uint) error {
	return m.Called(ctx, subject).Error(0)
}
