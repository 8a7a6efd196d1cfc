package handlers

import (
	"net/http"

	"organization-service-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// principalFromContext reads the authenticated principal identifier set by the
// auth middleware. Aborts with 401 when missing or malformed; handlers behind
// the middleware should never hit that path.
func principalFromContext(c *gin.Context) (uuid.UUID, bool) {
	subject := c.GetString(auth.ContextSubjectKey)
	if subject == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authenticated principal"})
		c.Abort()
		return uuid.Nil, false
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid principal identifier"})
		c.Abort()
		return uuid.Nil, false
	}
	return id, true
}

// bearerFromContext reads the raw bearer credential so it can be forwarded on
// the roster push.
func bearerFromContext(c *gin.Context) string {
	return c.GetString(auth.ContextTokenKey)
}
