package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/application/auth/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

// loginExecutor abstracts the login use case for testing.
type loginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

// AuthHandler handles authentication and auth configuration discovery.
type AuthHandler struct {
	loginUC    loginExecutor
	jwtEnabled bool
	logger     logger.Interface
}

func NewAuthHandler(loginUC loginExecutor, jwtEnabled bool, log logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC:    loginUC,
		jwtEnabled: jwtEnabled,
		logger:     log,
	}
}

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token})
}

// JWTConfig handles GET /config/jwt. The SPA polls it at boot to decide
// whether to attach bearer tokens.
func (h *AuthHandler) JWTConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"jwt_enabled": h.jwtEnabled})
}
