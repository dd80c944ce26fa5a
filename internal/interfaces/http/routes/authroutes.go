package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
)

type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	// LoginRateLimit throttles credential guessing; nil disables it.
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes registers the login and auth discovery routes. Both live
// outside the auth gate.
func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	login := []gin.HandlerFunc{}
	if config.LoginRateLimit != nil {
		login = append(login, config.LoginRateLimit)
	}
	login = append(login, config.AuthHandler.Login)

	engine.POST("/login", login...)
	engine.GET("/config/jwt", config.AuthHandler.JWTConfig)
}
