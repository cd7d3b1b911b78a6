// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
// ConfirmPassword maps to the caller's cPassword field.
type SignUpInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"cPassword"`
}

// SignInInput defines the data required for a user to log in.
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's non-sensitive profile.
type SignUpOutput struct {
	User *entity.Profile `json:"user"`
}

// SignInOutput returns the session token and the identity it was issued for.
type SignInOutput struct {
	Token  string      `json:"token"`
	UserID uuid.UUID   `json:"userId"`
	Role   entity.Role `json:"role"`
}

// RoleOutput returns a user's role.
type RoleOutput struct {
	Role entity.Role `json:"role"`
}

// ListUsersOutput returns all registered users without their password digests.
type ListUsersOutput struct {
	Users []*entity.Profile `json:"users"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
	CheckRole(ctx context.Context, userID uuid.UUID) (*RoleOutput, error)
	ListUsers(ctx context.Context) (*ListUsersOutput, error)
}
