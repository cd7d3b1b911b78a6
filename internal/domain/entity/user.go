// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. The email is the unique
// login key (case-sensitive as stored); PasswordHash holds the bcrypt digest
// and never the plaintext.
type User struct {
	ID           uuid.UUID // Unique identifier, assigned at creation, immutable.
	Name         string    // Display name.
	Email        string    // Login key; exactly one record per email.
	PasswordHash string    // One-way digest of the password.
	Role         Role      // Authorization level; defaults to RoleUser at signup.
	CreatedAt    time.Time // Timestamp of account creation.
}

// Profile is the non-sensitive projection of a User, safe to return to callers.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToProfile projects the user without its password digest.
func (u *User) ToProfile() *Profile {
	return &Profile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
