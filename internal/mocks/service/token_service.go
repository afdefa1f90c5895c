package service

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock and asserts its expectations when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject uint) (string, error) {
	args := m.Called(subject)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueWithTTL(subject uint, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(token string) (uint, error) {
	args := m.Called(token)
	subject, _ := args.Get(0).(uint)

	return subject, args.Error(1)
}

func (m *MockTokenService) TTL() time.Duration {
	ttl, _ := m.Called().Get(0).(time.Duration)

	return ttl
}
