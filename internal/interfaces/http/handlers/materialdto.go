package handlers

import (
	materialusecases "backoffice/internal/application/material/usecases"
	"backoffice/internal/shared/utils"
)

type CreateMaterialRequest struct {
	Designation string `json:"designation"`
}

// UpdateMaterialRequest carries a partial update.
type UpdateMaterialRequest struct {
	Designation *string `json:"designation"`
}

type MaterialResponse struct {
	ID          uint   `json:"id"`
	Designation string `json:"designation"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toMaterialResponse(data materialusecases.MaterialData) MaterialResponse {
	return MaterialResponse{
		ID:          data.ID,
		Designation: data.Designation,
		CreatedAt:   utils.FormatTimestamp(data.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(data.UpdatedAt),
	}
}

func toMaterialResponseList(data []materialusecases.MaterialData) []MaterialResponse {
	responses := make([]MaterialResponse, 0, len(data))
	for _, d := range data {
		responses = append(responses, toMaterialResponse(d))
	}
	return responses
}
