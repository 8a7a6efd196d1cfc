package auth

import (
	"errors"
	"strings"

	apperrors "organization-service-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the decoded bearer-token payload this service consumes:
// a principal identifier (subject) and a space-delimited scope string.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// PrincipalID returns the subject claim, the authenticated principal identifier
func (c *Claims) PrincipalID() string {
	return c.Subject
}

// HasScope reports whether the space-delimited scope string contains the token
func (c *Claims) HasScope(scope string) bool {
	for _, candidate := range strings.Fields(c.Scope) {
		if candidate == scope {
			return true
		}
	}
	return false
}

// Service decodes and validates bearer credentials. It does not issue tokens.
type Service struct {
	config *AuthConfig
}

// NewService creates a new authentication service
func NewService(config *AuthConfig) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Service{config: config}, nil
}

// ParseToken validates the signed token string and returns its claims.
// Expired and malformed credentials are both authentication failures, kept
// distinct from the insufficient-scope authorization failure.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrExpiredToken
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if s.config.Issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != s.config.Issuer {
			return nil, apperrors.ErrInvalidToken
		}
	}
	if claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// RequiredScope returns the scope token every request must carry
func (s *Service) RequiredScope() string {
	return s.config.RequiredScope
}
