package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/infrastructure/ratelimit"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

// LoginRateLimit throttles credential guessing per client IP. When the
// limiter backend is unreachable the request is allowed through rather than
// locking every client out.
func LoginRateLimit(limiter ratelimit.RateLimiter, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("login:"+c.ClientIP(), cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
