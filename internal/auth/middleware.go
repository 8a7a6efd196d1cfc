package auth

import (
	"net/http"
	"strings"

	apperrors "organization-service-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextSubjectKey = "subject"
	ContextScopeKey   = "scope"
	ContextTokenKey   = "bearer_token"
)

// AuthMiddleware provides bearer-token authentication middleware
type AuthMiddleware struct {
	service *Service
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *Service) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer credential and stores the principal id,
// scope string and raw token in the request context. The raw token is kept
// because the roster push forwards the caller's own credential.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, claims.PrincipalID())
		c.Set(ContextScopeKey, claims.Scope)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}

// RequireScope rejects authenticated requests whose scope string lacks the
// given token. This is a 403, distinct from the 401 of a bad credential.
func (m *AuthMiddleware) RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopeString := c.GetString(ContextScopeKey)
		claims := &Claims{Scope: scopeString}
		if !claims.HasScope(scope) {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientScope.Error()})
			c.Abort()
			return
		}
		c.Next()
	}
}
