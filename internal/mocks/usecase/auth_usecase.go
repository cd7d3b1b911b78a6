// Package usecase contains test doubles for the application interfaces.
package usecase

import (
	"context"
	"testing"

	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

var _ usecase.AuthUsecase = (*MockAuthUsecase)(nil)

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// SignUp mocks usecase.AuthUsecase.
func (m *MockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.SignUpOutput)

	return output, args.Error(1)
}

// SignIn mocks usecase.AuthUsecase.
func (m *MockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.SignInOutput)

	return output, args.Error(1)
}

// CheckRole mocks usecase.AuthUsecase.
func (m *MockAuthUsecase) CheckRole(ctx context.Context, userID uuid.UUID) (*usecase.RoleOutput, error) {
	args := m.Called(ctx, userID)
	output, _ := args.Get(0).(*usecase.RoleOutput)

	return output, args.Error(1)
}

// ListUsers mocks usecase.AuthUsecase.
func (m *MockAuthUsecase) ListUsers(ctx context.Context) (*usecase.ListUsersOutput, error) {
	args := m.Called(ctx)
	output, _ := args.Get(0).(*usecase.ListUsersOutput)

	return output, args.Error(1)
}
