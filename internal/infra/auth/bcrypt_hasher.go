// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"gatekeeper/config"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

// maxPasswordLength is bcrypt's hard input bound in bytes.
const maxPasswordLength = 72

// ErrPasswordEmpty is returned when an empty plaintext is submitted for hashing.
var ErrPasswordEmpty = domainerrors.NewBaseError(http.StatusBadRequest, "PASSWORD_EMPTY", "Password must not be empty", "")

// ErrPasswordTooLong is returned when the plaintext exceeds bcrypt's input bound.
var ErrPasswordTooLong = domainerrors.NewBaseError(http.StatusBadRequest, "PASSWORD_TOO_LONG", "Password is too long", "")

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted digest from a plaintext password using bcrypt.
// bcrypt handles salt generation, so two hashes of the same input differ.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordEmpty
	}
	if len(password) > maxPasswordLength {
		return "", ErrPasswordTooLong
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt digest.
// bcrypt's comparison is constant-time; a mismatch is a plain false.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
