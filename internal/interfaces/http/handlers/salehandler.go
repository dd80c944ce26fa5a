package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	saleusecases "backoffice/internal/application/sale/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

type saleCreator interface {
	Execute(ctx context.Context, cmd saleusecases.CreateSaleCommand) (*saleusecases.SaleData, error)
}

type saleGetter interface {
	Execute(ctx context.Context, id uint) (*saleusecases.SaleData, error)
}

type saleLister interface {
	Execute(ctx context.Context) ([]saleusecases.SaleData, error)
}

type saleUpdater interface {
	Execute(ctx context.Context, cmd saleusecases.UpdateSaleCommand) (*saleusecases.SaleData, error)
}

type saleDeleter interface {
	Execute(ctx context.Context, id uint) error
}

// SaleHandler handles HTTP requests for sales. Read responses embed the
// linked materials; the detail view embeds the customer too.
type SaleHandler struct {
	createUC       saleCreator
	getUC          saleGetter
	listUC         saleLister
	updateUC       saleUpdater
	deleteUC       saleDeleter
	customerGetUC  customerGetter
	materialListUC materialLister
	logger         logger.Interface
}

func NewSaleHandler(
	createUC saleCreator,
	getUC saleGetter,
	listUC saleLister,
	updateUC saleUpdater,
	deleteUC saleDeleter,
	customerGetUC customerGetter,
	materialListUC materialLister,
	log logger.Interface,
) *SaleHandler {
	return &SaleHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		customerGetUC:  customerGetUC,
		materialListUC: materialListUC,
		logger:         log,
	}
}

// CreateSale handles POST /sale
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create sale", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.createUC.Execute(c.Request.Context(), saleusecases.CreateSaleCommand{
		Title:       req.Title,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		MaterialIDs: req.MaterialIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toSaleResponse(*data, nil, h.materialsOf(c, data.MaterialIDs)), "Sale created successfully")
}

// GetSale handles GET /sale/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toSaleResponse(*data, h.customerOf(c, data.CustomerID), h.materialsOf(c, data.MaterialIDs)))
}

// ListSales handles GET /sale
func (h *SaleHandler) ListSales(c *gin.Context) {
	data, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	index := h.materialIndex(c)
	responses := make([]SaleResponse, 0, len(data))
	for _, d := range data {
		materials := make([]MaterialResponse, 0, len(d.MaterialIDs))
		for _, id := range d.MaterialIDs {
			if m, ok := index[id]; ok {
				materials = append(materials, m)
			}
		}
		responses = append(responses, toSaleResponse(d, nil, materials))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// UpdateSale handles PUT /sale/:id
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update sale", "sale_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.updateUC.Execute(c.Request.Context(), saleusecases.UpdateSaleCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		CustomerID:  req.CustomerID,
		MaterialIDs: req.MaterialIDs,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sale updated successfully", toSaleResponse(*data, nil, h.materialsOf(c, data.MaterialIDs)))
}

// DeleteSale handles DELETE /sale/:id
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sale")
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

func (h *SaleHandler) customerOf(c *gin.Context, customerID uint) *CustomerResponse {
	data, err := h.customerGetUC.Execute(c.Request.Context(), customerID)
	if err != nil || data == nil {
		return nil
	}
	resp := toCustomerResponse(*data, nil)
	return &resp
}

func (h *SaleHandler) materialsOf(c *gin.Context, materialIDs []uint) []MaterialResponse {
	if len(materialIDs) == 0 {
		return nil
	}
	index := h.materialIndex(c)
	materials := make([]MaterialResponse, 0, len(materialIDs))
	for _, id := range materialIDs {
		if m, ok := index[id]; ok {
			materials = append(materials, m)
		}
	}
	return materials
}

func (h *SaleHandler) materialIndex(c *gin.Context) map[uint]MaterialResponse {
	index := make(map[uint]MaterialResponse)
	data, err := h.materialListUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Warnw("failed to load materials for sale response", "error", err)
		return index
	}
	for _, d := range data {
		index[d.ID] = toMaterialResponse(d)
	}
	return index
}
