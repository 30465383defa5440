package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/auth"
)

func newTestAuthService(t *testing.T, tokenExp time.Duration) AuthService {
	t.Helper()

	hash, err := auth.HashPassword("letmein")
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: tokenExp,
		TokenIssuer:    "unidir-test",
	})
	return NewAuthService(jwtService, config.AuthConfig{
		AdminUser:         "admin",
		AdminPasswordHash: hash,
	})
}

func TestIssueTokenRejectsBadCredentials(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	_, _, err := svc.IssueToken("admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = svc.IssueToken("someone-else", "letmein")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, expiresIn, err := svc.IssueToken("admin", "letmein")
	require.NoError(t, err)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestValidateTokenMapsExpiry(t *testing.T) {
	svc := newTestAuthService(t, -time.Minute)

	token, _, err := svc.IssueToken("admin", "letmein")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
