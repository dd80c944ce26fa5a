package handlers

import (
	saleusecases "backoffice/internal/application/sale/usecases"
	"backoffice/internal/shared/utils"
)

type CreateSaleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CustomerID  uint   `json:"customer_id"`
	MaterialIDs []uint `json:"material_ids"`
}

// UpdateSaleRequest is a full replacement. An absent material_ids list
// syncs the linked material set to empty.
type UpdateSaleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CustomerID  uint   `json:"customer_id"`
	MaterialIDs []uint `json:"material_ids"`
}

type SaleResponse struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	DescriptionHTML string             `json:"description_html,omitempty"`
	CustomerID      uint               `json:"customer_id"`
	Customer        *CustomerResponse  `json:"customer,omitempty"`
	MaterialIDs     []uint             `json:"material_ids"`
	Materials       []MaterialResponse `json:"materials,omitempty"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

func toSaleResponse(data saleusecases.SaleData, cust *CustomerResponse, materials []MaterialResponse) SaleResponse {
	materialIDs := data.MaterialIDs
	if materialIDs == nil {
		materialIDs = []uint{}
	}
	return SaleResponse{
		ID:              data.ID,
		Title:           data.Title,
		Description:     data.Description,
		DescriptionHTML: data.DescriptionHTML,
		CustomerID:      data.CustomerID,
		Customer:        cust,
		MaterialIDs:     materialIDs,
		Materials:       materials,
		CreatedAt:       utils.FormatTimestamp(data.CreatedAt),
		UpdatedAt:       utils.FormatTimestamp(data.UpdatedAt),
	}
}
