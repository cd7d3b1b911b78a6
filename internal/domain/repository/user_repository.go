// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned by Create when the email is already registered.
// Uniqueness of email is enforced by the store at insert time.
var ErrEmailTaken = errors.New("email already registered")

// ListFilter narrows FindAll results. The zero value matches all users;
// richer filter semantics are owned by the repository implementation.
type ListFilter struct {
	Role *entity.Role
}

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, assigning its ID.
	Create(ctx context.Context, user *entity.User) error

	// FindAll retrieves every user matching the filter.
	FindAll(ctx context.Context, filter ListFilter) ([]*entity.User, error)
}
