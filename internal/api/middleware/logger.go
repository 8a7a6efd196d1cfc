package middleware

import (
	"strings"
	"time"

	"organization-service-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs every request with method, path, status and latency.
// Health-check paths are silently skipped.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if id := c.GetString("request_id"); id != "" {
			fields["request_id"] = id
		}
		if subject := c.GetString("subject"); subject != "" {
			fields["principal"] = subject
		}

		log := logger.New().WithFields(fields)
		switch {
		case status >= 500:
			log.Error("Request completed")
		case status >= 400:
			log.Warn("Request completed")
		default:
			log.Info("Request completed")
		}
	}
}

func isHealthEndpoint(path string) bool {
	return path == "/health" || strings.HasPrefix(path, "/health/")
}
