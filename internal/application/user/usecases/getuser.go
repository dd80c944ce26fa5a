package usecases

import (
	"context"

	"backoffice/internal/domain/user"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*UserData, error) {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	data := toUserData(u)
	return &data, nil
}
