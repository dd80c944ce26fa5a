package handlers

import (
	ticketusecases "backoffice/internal/application/ticket/usecases"
	"backoffice/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SaleID      uint   `json:"sale_id"`
}

// UpdateTicketRequest is a full replacement. After the update the ticket is
// linked to exactly the given sale.
type UpdateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SaleID      uint   `json:"sale_id"`
}

type TicketResponse struct {
	ID              uint           `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DescriptionHTML string         `json:"description_html,omitempty"`
	SaleID          uint           `json:"sale_id"`
	Sales           []SaleResponse `json:"sales,omitempty"`
	CreatedAt       string         `json:"created_at"`
	UpdatedAt       string         `json:"updated_at"`
}

func toTicketResponse(data ticketusecases.TicketData, sales []SaleResponse) TicketResponse {
	return TicketResponse{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		DescriptionHTML: data.DescriptionHTML,
		SaleID:          data.SaleID,
		Sales:           sales,
		CreatedAt:       utils.FormatTimestamp(data.CreatedAt),
		UpdatedAt:       utils.FormatTimestamp(data.UpdatedAt),
	}
}
