package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/application/user/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

type userCreator interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*usecases.UserData, error)
}

type userGetter interface {
	Execute(ctx context.Context, id uint) (*usecases.UserData, error)
}

type userLister interface {
	Execute(ctx context.Context) ([]usecases.UserData, error)
}

type userUpdater interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*usecases.UserData, error)
}

type userDeleter interface {
	Execute(ctx context.Context, id uint) error
}

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	createUC userCreator
	getUC    userGetter
	listUC   userLister
	updateUC userUpdater
	deleteUC userDeleter
	logger   logger.Interface
}

func NewUserHandler(
	createUC userCreator,
	getUC userGetter,
	listUC userLister,
	updateUC userUpdater,
	deleteUC userDeleter,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// CreateUser handles POST /utilisateur (signup, outside the auth gate)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toUserResponse(*data), "User created successfully")
}

// GetUser handles GET /utilisateur/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponse(*data))
}

// ListUsers handles GET /utilisateur
func (h *UserHandler) ListUsers(c *gin.Context) {
	data, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toUserResponseList(data))
}

// UpdateUser handles PUT /utilisateur/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", toUserResponse(*data))
}

// DeleteUser handles DELETE /utilisateur/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
