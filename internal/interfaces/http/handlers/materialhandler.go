package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	materialusecases "backoffice/internal/application/material/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

type materialCreator interface {
	Execute(ctx context.Context, cmd materialusecases.CreateMaterialCommand) (*materialusecases.MaterialData, error)
}

type materialGetter interface {
	Execute(ctx context.Context, id uint) (*materialusecases.MaterialData, error)
}

type materialLister interface {
	Execute(ctx context.Context) ([]materialusecases.MaterialData, error)
}

type materialUpdater interface {
	Execute(ctx context.Context, cmd materialusecases.UpdateMaterialCommand) (*materialusecases.MaterialData, error)
}

type materialDeleter interface {
	Execute(ctx context.Context, id uint) error
}

// MaterialHandler handles HTTP requests for materials.
type MaterialHandler struct {
	createUC materialCreator
	getUC    materialGetter
	listUC   materialLister
	updateUC materialUpdater
	deleteUC materialDeleter
	logger   logger.Interface
}

func NewMaterialHandler(
	createUC materialCreator,
	getUC materialGetter,
	listUC materialLister,
	updateUC materialUpdater,
	deleteUC materialDeleter,
	log logger.Interface,
) *MaterialHandler {
	return &MaterialHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// CreateMaterial handles POST /material
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create material", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.createUC.Execute(c.Request.Context(), materialusecases.CreateMaterialCommand{
		Designation: req.Designation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toMaterialResponse(*data), "Material created successfully")
}

// GetMaterial handles GET /material/:id
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMaterialResponse(*data))
}

// ListMaterials handles GET /material
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	data, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMaterialResponseList(data))
}

// UpdateMaterial handles PUT /material/:id
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "material")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update material", "material_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.updateUC.Execute(c.Request.Context(), materialusecases.UpdateMaterialCommand{
		ID:          id,
		Designation: req.Designation,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Material updated successfully", toMaterialResponse(*data))
}

// DeleteMaterial handles DELETE /material/:id
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "material")
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
