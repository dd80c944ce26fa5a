package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/shared/utils"
)

// Ping answers the per-resource liveness probes (GET /{resource}/ping).
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "pong",
		"timestamp": utils.NowTimestamp(),
	})
}
