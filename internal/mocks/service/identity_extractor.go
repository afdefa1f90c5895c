package service

import (
	"github.com/stretchr/testify/mock"
)

// MockIdentityExtractor is a mock implementation of service.IdentityExtractor.
type MockIdentityExtractor struct {
	mock.Mock
}

// NewMockIdentityExtractor creates a mock and asserts its expectations when the test ends.
func NewMockIdentityExtractor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityExtractor {
	m := &MockIdentityExtractor{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityExtractor) Extract(authorizationHeader string) (uint, error) {
	args := m.Called(authorizationHeader)
	subject, _ := args.Get(0).(uint)

	return subject, args.Error(1)
}
