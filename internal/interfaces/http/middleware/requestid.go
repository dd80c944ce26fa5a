package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation id. An id supplied by the
// caller is kept so upstream proxies can trace through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
			c.Request.Header.Set(requestIDHeader, requestID)
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)

		c.Next()
	}
}
