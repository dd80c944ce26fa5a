package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketusecases "backoffice/internal/application/ticket/usecases"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/utils"
)

type ticketCreator interface {
	Execute(ctx context.Context, cmd ticketusecases.CreateTicketCommand) (*ticketusecases.TicketData, error)
}

type ticketGetter interface {
	Execute(ctx context.Context, id uint) (*ticketusecases.TicketData, error)
}

type ticketLister interface {
	Execute(ctx context.Context) ([]ticketusecases.TicketData, error)
}

type ticketUpdater interface {
	Execute(ctx context.Context, cmd ticketusecases.UpdateTicketCommand) (*ticketusecases.TicketData, error)
}

type ticketDeleter interface {
	Execute(ctx context.Context, id uint) error
}

// TicketHandler handles HTTP requests for tickets. Read responses embed the
// linked sales.
type TicketHandler struct {
	createUC  ticketCreator
	getUC     ticketGetter
	listUC    ticketLister
	updateUC  ticketUpdater
	deleteUC  ticketDeleter
	saleGetUC saleGetter
	logger    logger.Interface
}

func NewTicketHandler(
	createUC ticketCreator,
	getUC ticketGetter,
	listUC ticketLister,
	updateUC ticketUpdater,
	deleteUC ticketDeleter,
	saleGetUC saleGetter,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:  createUC,
		getUC:     getUC,
		listUC:    listUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		saleGetUC: saleGetUC,
		logger:    log,
	}
}

// CreateTicket handles POST /ticket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.createUC.Execute(c.Request.Context(), ticketusecases.CreateTicketCommand{
		Title:       req.Title,
		Description: req.Description,
		SaleID:      req.SaleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toTicketResponse(*data, h.salesOf(c, data.SaleID)), "Ticket created successfully")
}

// GetTicket handles GET /ticket/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	data, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketResponse(*data, h.salesOf(c, data.SaleID)))
}

// ListTickets handles GET /ticket
func (h *TicketHandler) ListTickets(c *gin.Context) {
	data, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// sales shared across tickets are fetched once
	cache := make(map[uint][]SaleResponse)
	responses := make([]TicketResponse, 0, len(data))
	for _, d := range data {
		sales, ok := cache[d.SaleID]
		if !ok {
			sales = h.salesOf(c, d.SaleID)
			cache[d.SaleID] = sales
		}
		responses = append(responses, toTicketResponse(d, sales))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

// UpdateTicket handles PUT /ticket/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.TranslateBindingError(err))
		return
	}

	data, err := h.updateUC.Execute(c.Request.Context(), ticketusecases.UpdateTicketCommand{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		SaleID:      req.SaleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", toTicketResponse(*data, h.salesOf(c, data.SaleID)))
}

// DeleteTicket handles DELETE /ticket/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "ticket")
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

func (h *TicketHandler) salesOf(c *gin.Context, saleID uint) []SaleResponse {
	if saleID == 0 {
		return nil
	}
	data, err := h.saleGetUC.Execute(c.Request.Context(), saleID)
	if err != nil || data == nil {
		return nil
	}
	return []SaleResponse{toSaleResponse(*data, nil, nil)}
}
