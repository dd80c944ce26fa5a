package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
)

type MaterialRouteConfig struct {
	MaterialHandler *handlers.MaterialHandler
	Authenticator   middleware.TokenAuthenticator
}

// SetupMaterialRoutes registers the material resource behind the auth gate.
func SetupMaterialRoutes(engine *gin.Engine, config *MaterialRouteConfig) {
	materials := engine.Group("/material")

	materials.GET("/ping", handlers.Ping)

	gate := config.Authenticator.Authenticate()
	materials.POST("", gate, config.MaterialHandler.CreateMaterial)
	materials.GET("", gate, config.MaterialHandler.ListMaterials)
	materials.GET("/:id", gate, config.MaterialHandler.GetMaterial)
	materials.PUT("/:id", gate, config.MaterialHandler.UpdateMaterial)
	materials.DELETE("/:id", gate, config.MaterialHandler.DeleteMaterial)
}
