package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler   *handlers.UserHandler
	Authenticator middleware.TokenAuthenticator
}

// SetupUserRoutes registers the user resource. Signup and the ping probe
// stay outside the auth gate.
func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/utilisateur")

	users.POST("", config.UserHandler.CreateUser)
	users.GET("/ping", handlers.Ping)

	gate := config.Authenticator.Authenticate()
	users.GET("", gate, config.UserHandler.ListUsers)
	users.GET("/:id", gate, config.UserHandler.GetUser)
	users.PUT("/:id", gate, config.UserHandler.UpdateUser)
	users.DELETE("/:id", gate, config.UserHandler.DeleteUser)
}
