package handlers

import (
	"backoffice/internal/application/user/usecases"
	"backoffice/internal/shared/utils"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries a partial update: absent fields keep their
// stored value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toUserResponse(data usecases.UserData) UserResponse {
	return UserResponse{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Email:       data.Email,
		CreatedAt:   utils.FormatTimestamp(data.CreatedAt),
		UpdatedAt:   utils.FormatTimestamp(data.UpdatedAt),
	}
}

func toUserResponseList(data []usecases.UserData) []UserResponse {
	responses := make([]UserResponse, 0, len(data))
	for _, d := range data {
		responses = append(responses, toUserResponse(d))
	}
	return responses
}
