package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authusecases "backoffice/internal/application/auth/usecases"
	"backoffice/internal/application/cascade"
	customerusecases "backoffice/internal/application/customer/usecases"
	materialusecases "backoffice/internal/application/material/usecases"
	saleusecases "backoffice/internal/application/sale/usecases"
	ticketusecases "backoffice/internal/application/ticket/usecases"
	userusecases "backoffice/internal/application/user/usecases"
	"backoffice/internal/infrastructure/auth"
	"backoffice/internal/infrastructure/config"
	"backoffice/internal/infrastructure/email"
	"backoffice/internal/infrastructure/ratelimit"
	"backoffice/internal/infrastructure/repository"
	"backoffice/internal/interfaces/http/handlers"
	"backoffice/internal/interfaces/http/middleware"
	"backoffice/internal/interfaces/http/routes"
	"backoffice/internal/shared/db"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

// Router wires repositories, use cases, handlers and middleware into a gin
// engine.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	logger          logger.Interface
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	customerHandler *handlers.CustomerHandler
	materialHandler *handlers.MaterialHandler
	saleHandler     *handlers.SaleHandler
	ticketHandler   *handlers.TicketHandler
	authenticator   middleware.TokenAuthenticator
	loginRateLimit  gin.HandlerFunc
}

// NewRouter builds the full dependency graph. The auth gate strategy is
// picked here, once, from the configuration.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	customerRepo := repository.NewCustomerRepository(database)
	materialRepo := repository.NewMaterialRepository(database)
	saleRepo := repository.NewSaleRepository(database)
	ticketRepo := repository.NewTicketRepository(database)

	txManager := db.NewTransactionManager(database)
	md := markdown.NewService()
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.Issuer,
		cfg.Auth.JWT.ExpirySeconds,
	)

	deleter := cascade.NewDeleter(userRepo, customerRepo, saleRepo, ticketRepo, txManager, log)

	var notifier ticketusecases.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			NotifyTo:    cfg.Email.NotifyTo,
		})
	}

	loginUC := authusecases.NewLoginUseCase(userRepo, jwtService, hasher, log)
	authHandler := handlers.NewAuthHandler(loginUC, cfg.Auth.JWT.Enabled, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, hasher, log)
	getUserUC := userusecases.NewGetUserUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	updateUserUC := userusecases.NewUpdateUserUseCase(userRepo, hasher, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, deleter, log)
	userHandler := handlers.NewUserHandler(
		createUserUC, getUserUC, listUsersUC, updateUserUC, deleteUserUC, log,
	)

	createCustomerUC := customerusecases.NewCreateCustomerUseCase(customerRepo, userRepo, log)
	getCustomerUC := customerusecases.NewGetCustomerUseCase(customerRepo, log)
	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, log)
	updateCustomerUC := customerusecases.NewUpdateCustomerUseCase(customerRepo, userRepo, log)
	deleteCustomerUC := customerusecases.NewDeleteCustomerUseCase(customerRepo, deleter, log)
	customerHandler := handlers.NewCustomerHandler(
		createCustomerUC, getCustomerUC, listCustomersUC, updateCustomerUC, deleteCustomerUC,
		getUserUC, listUsersUC, log,
	)

	createMaterialUC := materialusecases.NewCreateMaterialUseCase(materialRepo, log)
	getMaterialUC := materialusecases.NewGetMaterialUseCase(materialRepo, log)
	listMaterialsUC := materialusecases.NewListMaterialsUseCase(materialRepo, log)
	updateMaterialUC := materialusecases.NewUpdateMaterialUseCase(materialRepo, log)
	deleteMaterialUC := materialusecases.NewDeleteMaterialUseCase(materialRepo, saleRepo, txManager, log)
	materialHandler := handlers.NewMaterialHandler(
		createMaterialUC, getMaterialUC, listMaterialsUC, updateMaterialUC, deleteMaterialUC, log,
	)

	createSaleUC := saleusecases.NewCreateSaleUseCase(saleRepo, customerRepo, materialRepo, txManager, md, log)
	getSaleUC := saleusecases.NewGetSaleUseCase(saleRepo, md, log)
	listSalesUC := saleusecases.NewListSalesUseCase(saleRepo, md, log)
	updateSaleUC := saleusecases.NewUpdateSaleUseCase(saleRepo, customerRepo, materialRepo, txManager, md, log)
	deleteSaleUC := saleusecases.NewDeleteSaleUseCase(saleRepo, deleter, log)
	saleHandler := handlers.NewSaleHandler(
		createSaleUC, getSaleUC, listSalesUC, updateSaleUC, deleteSaleUC,
		getCustomerUC, listMaterialsUC, log,
	)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, saleRepo, txManager, md, notifier, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, md, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, md, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, saleRepo, txManager, md, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, txManager, log)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC,
		getSaleUC, log,
	)

	var authenticator middleware.TokenAuthenticator
	if cfg.Auth.JWT.Enabled {
		authenticator = middleware.NewBearerAuthenticator(jwtService, log)
	} else {
		authenticator = middleware.NewPassthroughAuthenticator()
	}

	return &Router{
		engine:          engine,
		cfg:             cfg,
		logger:          log,
		authHandler:     authHandler,
		userHandler:     userHandler,
		customerHandler: customerHandler,
		materialHandler: materialHandler,
		saleHandler:     saleHandler,
		ticketHandler:   ticketHandler,
		authenticator:   authenticator,
		loginRateLimit:  buildLoginRateLimit(cfg, log),
	}
}

// SetupRoutes configures the middleware stack and all resource routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		LoginRateLimit: r.loginRateLimit,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:   r.userHandler,
		Authenticator: r.authenticator,
	})
	routes.SetupCustomerRoutes(r.engine, &routes.CustomerRouteConfig{
		CustomerHandler: r.customerHandler,
		Authenticator:   r.authenticator,
	})
	routes.SetupMaterialRoutes(r.engine, &routes.MaterialRouteConfig{
		MaterialHandler: r.materialHandler,
		Authenticator:   r.authenticator,
	})
	routes.SetupSaleRoutes(r.engine, &routes.SaleRouteConfig{
		SaleHandler:   r.saleHandler,
		Authenticator: r.authenticator,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
		Authenticator: r.authenticator,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func buildLoginRateLimit(cfg *config.Config, log logger.Interface) gin.HandlerFunc {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := ratelimit.NewRedisRateLimiter(client)

	return middleware.LoginRateLimit(limiter, ratelimit.RateLimitConfig{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
		RequestsPerDay:    500,
	}, log)
}
