package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/internal/infrastructure/auth"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

// TokenAuthenticator guards protected routes. The implementation is picked
// once at router construction time from the auth configuration, so handlers
// never branch on the auth mode at request time.
type TokenAuthenticator interface {
	Authenticate() gin.HandlerFunc
}

// BearerAuthenticator verifies an Authorization: Bearer token on every
// request. It is stateless and never touches the user store.
type BearerAuthenticator struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewBearerAuthenticator(jwtService *auth.JWTService, log logger.Interface) *BearerAuthenticator {
	return &BearerAuthenticator{
		jwtService: jwtService,
		logger:     log,
	}
}

func (a *BearerAuthenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Token not provided"))
			c.Abort()
			return
		}

		userID, err := a.jwtService.Verify(token)
		if err != nil {
			a.logger.Warnw("token verification failed",
				"path", c.Request.URL.Path,
				"error", err)
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// PassthroughAuthenticator lets every request through. Used when token auth
// is disabled and an upstream same-origin session scheme applies.
type PassthroughAuthenticator struct{}

func NewPassthroughAuthenticator() *PassthroughAuthenticator {
	return &PassthroughAuthenticator{}
}

func (a *PassthroughAuthenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
