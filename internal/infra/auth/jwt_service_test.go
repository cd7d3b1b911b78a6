package auth

import (
	"testing"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:   "test_signing_secret_very_long_for_testing",
			TokenTTL: 15 * time.Minute,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService(t)

	subjectID := uuid.New()
	token, err := svc.Issue(subjectID, entity.RoleAdmin, svc.AccessTokenTTL())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t)

	// Issued already elapsed.
	token, err := svc.Issue(uuid.New(), entity.RoleUser, -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(uuid.New(), entity.RoleUser, time.Minute)
	require.NoError(t, err)

	// Flip one character in the payload segment.
	mid := len(token) / 2
	altered := byte('A')
	if token[mid] == altered {
		altered = 'B'
	}
	tampered := token[:mid] + string(altered) + token[mid+1:]
	require.NotEqual(t, token, tampered)

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{Secret: "a_completely_different_secret", TokenTTL: time.Minute},
	})
	require.NoError(t, err)

	token, err := other.Issue(uuid.New(), entity.RoleUser, time.Minute)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_RejectsNonHMACSigningMethod(t *testing.T) {
	svc := newTestTokenService(t)

	// An unsigned token must never pass signature verification.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleAdmin.String(),
		"exp":  time.Now().Add(time.Minute).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestTokenService(t)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
