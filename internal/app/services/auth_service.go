package services

import (
	"errors"

	"github.com/murad/unidir/internal/config"
	"github.com/murad/unidir/internal/pkg/apperrors"
	"github.com/murad/unidir/internal/pkg/auth"
	"github.com/murad/unidir/internal/pkg/logger"
)

// AuthService issues access tokens for the administrative account.
type AuthService interface {
	IssueToken(username, password string) (token string, expiresIn int, err error)
	ValidateToken(token string) (*auth.Claims, error)
}

type authService struct {
	jwtService *auth.JWTService
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(jwtService *auth.JWTService, authConfig config.AuthConfig) AuthService {
	return &authService{
		jwtService: jwtService,
		authConfig: authConfig,
	}
}

// IssueToken verifies the admin credentials and returns a signed token.
func (s *authService) IssueToken(username, password string) (string, int, error) {
	if username != s.authConfig.AdminUser || !auth.CheckPassword(s.authConfig.AdminPasswordHash, password) {
		logger.Warn().Str("username", username).Msg("Token request with invalid credentials")
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(username)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate access token")
		return "", 0, err
	}
	return token, expiresIn, nil
}

// ValidateToken checks a token and returns its claims.
func (s *authService) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, apperrors.ErrTokenExpired
		default:
			return nil, apperrors.ErrTokenInvalid
		}
	}
	return claims, nil
}
