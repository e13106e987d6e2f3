package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/jobsvc/internal/logging"
)

// RequestLogger logs one line per request.
func RequestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if id := c.GetString(userIDKey); id != "" {
			fields = append(fields, "user_id", id)
		}
		log.Info(c.Request.Context(), "http request", fields...)
	}
}
