// README: Global token-bucket rate limiter.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tripfit/internal/config"
	"tripfit/internal/logger"
)

// RateLimit rejects requests beyond cfg.PerMinute (with cfg.Burst headroom)
// with 429. A non-positive PerMinute disables limiting.
func RateLimit(cfg config.RateLimitConfig, log *logger.Logger) gin.HandlerFunc {
	if cfg.PerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.PerMinute)/60), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WithFields(logger.Fields{
				"request_id": GetRequestID(c),
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
