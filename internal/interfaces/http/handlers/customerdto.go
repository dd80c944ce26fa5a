package handlers

import (
	customerusecases "backoffice/internal/application/customer/usecases"
	"backoffice/internal/shared/utils"
)

type CreateCustomerRequest struct {
	Nickname string `json:"nickname"`
	UserID   uint   `json:"user_id"`
}

// UpdateCustomerRequest is a full replacement: every field must be present.
type UpdateCustomerRequest struct {
	Nickname string `json:"nickname"`
	UserID   uint   `json:"user_id"`
}

type CustomerResponse struct {
	ID        uint          `json:"id"`
	Nickname  string        `json:"nickname"`
	UserID    uint          `json:"user_id"`
	User      *UserResponse `json:"user,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

func toCustomerResponse(data customerusecases.CustomerData, owner *UserResponse) CustomerResponse {
	return CustomerResponse{
		ID:        data.ID,
		Nickname:  data.Nickname,
		UserID:    data.UserID,
		User:      owner,
		CreatedAt: utils.FormatTimestamp(data.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(data.UpdatedAt),
	}
}
