package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
)

type CustomerRouteConfig struct {
	CustomerHandler *handlers.CustomerHandler
	Authenticator   middleware.TokenAuthenticator
}

// SetupCustomerRoutes registers the customer resource behind the auth gate.
func SetupCustomerRoutes(engine *gin.Engine, config *CustomerRouteConfig) {
	customers := engine.Group("/client")

	customers.GET("/ping", handlers.Ping)

	gate := config.Authenticator.Authenticate()
	customers.POST("", gate, config.CustomerHandler.CreateCustomer)
	customers.GET("", gate, config.CustomerHandler.ListCustomers)
	customers.GET("/:id", gate, config.CustomerHandler.GetCustomer)
	customers.PUT("/:id", gate, config.CustomerHandler.UpdateCustomer)
	customers.DELETE("/:id", gate, config.CustomerHandler.DeleteCustomer)
}
