// README: Request logging middleware (structured, one entry per request).
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"tripfit/internal/logger"
)

// slowRequest marks requests worth a warning.
const slowRequest = time.Second

func Logging(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		log.LogRequest(GetRequestID(c), c.Request.Method, path, c.ClientIP(), c.Writer.Status(), latency.Milliseconds())
		if latency > slowRequest {
			log.WithFields(logger.Fields{
				"request_id":  GetRequestID(c),
				"path":        path,
				"query":       c.Request.URL.RawQuery,
				"duration_ms": latency.Milliseconds(),
			}).Warn("slow request")
		}
	}
}
