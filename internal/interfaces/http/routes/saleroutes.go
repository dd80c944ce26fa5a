package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
)

type SaleRouteConfig struct {
	SaleHandler   *handlers.SaleHandler
	Authenticator middleware.TokenAuthenticator
}

// SetupSaleRoutes registers the sale resource behind the auth gate.
func SetupSaleRoutes(engine *gin.Engine, config *SaleRouteConfig) {
	sales := engine.Group("/sale")

	sales.GET("/ping", handlers.Ping)

	gate := config.Authenticator.Authenticate()
	sales.POST("", gate, config.SaleHandler.CreateSale)
	sales.GET("", gate, config.SaleHandler.ListSales)
	sales.GET("/:id", gate, config.SaleHandler.GetSale)
	sales.PUT("/:id", gate, config.SaleHandler.UpdateSale)
	sales.DELETE("/:id", gate, config.SaleHandler.DeleteSale)
}
