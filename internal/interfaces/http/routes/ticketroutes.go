package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler *handlers.TicketHandler
	Authenticator middleware.TokenAuthenticator
}

// SetupTicketRoutes registers the ticket resource behind the auth gate.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/ticket")

	tickets.GET("/ping", handlers.Ping)

	gate := config.Authenticator.Authenticate()
	tickets.POST("", gate, config.TicketHandler.CreateTicket)
	tickets.GET("", gate, config.TicketHandler.ListTickets)
	tickets.GET("/:id", gate, config.TicketHandler.GetTicket)
	tickets.PUT("/:id", gate, config.TicketHandler.UpdateTicket)
	tickets.DELETE("/:id", gate, config.TicketHandler.DeleteTicket)
}
