// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	// Empty or over-length input is rejected with an error.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest in constant time.
	// A mismatch is a normal false result, never an error.
	Check(password, hash string) bool
}
