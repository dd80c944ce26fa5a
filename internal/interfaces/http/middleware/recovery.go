package middleware

import (
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

// Recovery converts panics into a generic 500 response. Broken client
// connections are logged and aborted without writing a body, since the
// peer is already gone.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			log.Warnw("connection broken during request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("request_id"),
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

func isBrokenConnection(err interface{}) bool {
	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}
	msg := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
