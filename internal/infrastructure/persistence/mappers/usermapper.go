package mappers

import (
	"fmt"
	"time"

	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email for user %d: %w", model.ID, err)
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		model.PasswordHash,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	), nil
}
