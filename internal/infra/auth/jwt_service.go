// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret comes from configuration, loaded once at startup.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed HS256 token binding the subject, role and expiry.
func (s *jwtService) Issue(subjectID uuid.UUID, role entity.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subjectID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry, then extracts the session claims.
// The parser validates the signature before any claim is trusted; claims from a
// token that fails verification are never returned.
func (s *jwtService) Verify(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}

		return nil, domainerrors.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	subStr, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	subjectID, err := uuid.Parse(subStr)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &service.SessionClaims{
		SubjectID: subjectID,
		Role:      role,
	}, nil
}

// AccessTokenTTL returns the configured default time-to-live for session tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.ttl
}
