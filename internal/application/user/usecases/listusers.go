package usecases

import (
	"context"

	"backoffice/internal/domain/user"
	"backoffice/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserData, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	result := make([]UserData, 0, len(users))
	for _, u := range users {
		result = append(result, toUserData(u))
	}
	return result, nil
}
