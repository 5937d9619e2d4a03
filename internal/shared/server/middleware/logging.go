package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/telemetry"
)

// VersionIDKey is the context key handlers set once a version is known.
const VersionIDKey = "versionId"

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"version_id":  c.GetString(VersionIDKey),
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
