// Package service contains test doubles for the domain service interfaces.
package service

import (
	"testing"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

var _ service.PasswordHasher = (*MockPasswordHasher)(nil)

// NewMockPasswordHasher creates a mock bound to the test's lifecycle.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Hash mocks service.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

// Check mocks service.PasswordHasher.
func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock bound to the test's lifecycle.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Issue mocks service.TokenService.
func (m *MockTokenService) Issue(subjectID uuid.UUID, role entity.Role, ttl time.Duration) (string, error) {
	args := m.Called(subjectID, role, ttl)

	return args.String(0), args.Error(1)
}

// Verify mocks service.TokenService.
func (m *MockTokenService) Verify(token string) (*service.SessionClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*service.SessionClaims)

	return claims, args.Error(1)
}

// AccessTokenTTL mocks service.TokenService.
func (m *MockTokenService) AccessTokenTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
