package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	customerusecases "backoffice/internal/application/customer/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

type customerCreator interface {
	Execute(ctx context.Context, cmd customerusecases.CreateCustomerCommand) (*customerusecases.CustomerData, error)
}

type customerGetter interface {
	Execute(ctx context.Context, id uint) (*customerusecases.CustomerData, error)
}

type customerLister interface {
	Execute(ctx context.Context) ([]customerusecases.CustomerData, error)
}

type customerUpdater interface {
	Execute(ctx context.Context, cmd customerusecases.UpdateCustomerCommand) (*customerusecases.CustomerData, error)
}

type customerDeleter interface {
	Execute(ctx context.Context, id uint) error
}

// CustomerHandler handles HTTP requests for customers. Read responses embed
// the owning user.
type CustomerHandler struct {
	createUC   customerCreator
	getUC      customerGetter
	listUC     customerLister
	updateUC   customerUpdater
	deleteUC   customerDeleter
	userGetUC  userGetter
	userListUC userLister
	logger     logger.Interface
}

func NewCustomerHandler(
	createUC customerCreator,
	getUC customerGetter,
	listUC customerLister,
	updateUC customerUpdater,
	deleteUC customerDeleter,
	userGetUC userGetter,
	userListUC userLister,
	log logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUC:   createUC,
		getUC:      getUC,
		listUC:     listUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
		userGetUC:  userGetUC,
		userListUC: userListUC,
		logger:     log,
	}
}

// CreateCustomer handles POST /client
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.createUC.Execute(c.Request.Context(), customerusecases.CreateCustomerCommand{
		Nickname: req.Nickname,
		UserID:   req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCustomerResponse(*data, h.ownerOf(c, data.UserID)), "Customer created successfully")
}

// GetCustomer handles GET /client/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toCustomerResponse(*data, h.ownerOf(c, data.UserID)))
}

// ListCustomers handles GET /client
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	data, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	owners := h.ownerIndex(c)
	responses := make([]CustomerResponse, 0, len(data))
	for _, d := range data {
		responses = append(responses, toCustomerResponse(d, owners[d.UserID]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// UpdateCustomer handles PUT /client/:id
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update customer", "customer_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.updateUC.Execute(c.Request.Context(), customerusecases.UpdateCustomerCommand{
		ID:       id,
		Nickname: req.Nickname,
		UserID:   req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Customer updated successfully", toCustomerResponse(*data, h.ownerOf(c, data.UserID)))
}

// DeleteCustomer handles DELETE /client/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "customer")
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

// ownerOf resolves the owning user for embedding. A lookup failure only
// degrades the response, it never fails the request.
func (h *CustomerHandler) ownerOf(c *gin.Context, userID uint) *UserResponse {
	data, err := h.userGetUC.Execute(c.Request.Context(), userID)
	if err != nil || data == nil {
		return nil
	}
	resp := toUserResponse(*data)
	return &resp
}

func (h *CustomerHandler) ownerIndex(c *gin.Context) map[uint]*UserResponse {
	index := make(map[uint]*UserResponse)
	users, err := h.userListUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Warnw("failed to load users for customer list", "error", err)
		return index
	}
	for _, u := range users {
		resp := toUserResponse(u)
		index[u.ID] = &resp
	}
	return index
}
