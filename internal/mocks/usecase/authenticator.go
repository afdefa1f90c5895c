// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthenticator is a mock implementation of usecase.Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

// NewMockAuthenticator creates a mock and asserts its expectations when the test ends.
func NewMockAuthenticator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}
