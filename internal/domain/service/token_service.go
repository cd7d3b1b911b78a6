package service

import (
	"time"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims is the identity data embedded in a session token.
// Claims are only trustworthy after the token's signature has been verified.
// The role is a copy taken at issuance time and is not re-checked live.
type SessionClaims struct {
	SubjectID uuid.UUID
	Role      entity.Role
}

// TokenService defines the interface for issuing and verifying session tokens.
// Tokens are self-contained and stateless; there is no server-side session
// table and no revocation before expiry.
type TokenService interface {
	// Issue creates a signed token binding the subject and role, expiring at now+ttl.
	Issue(subjectID uuid.UUID, role entity.Role, ttl time.Duration) (string, error)

	// Verify checks the token's signature before trusting any embedded claim.
	// It returns ErrTokenExpired for an elapsed token and ErrTokenInvalid for
	// any other verification failure.
	Verify(token string) (*SessionClaims, error)

	// AccessTokenTTL returns the configured default time-to-live for session tokens.
	AccessTokenTTL() time.Duration
}
