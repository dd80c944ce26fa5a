package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/user"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo user.Repository
	deleter  *cascade.Deleter
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	deleter *cascade.Deleter,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		deleter:  deleter,
		logger:   logger,
	}
}

// Execute removes the user and, transitively, their customers, those
// customers' sales and those sales' tickets in one transaction.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) error {
	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find user", "user_id", id, "error", err)
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.deleter.DeleteUser(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		return err
	}
	return nil
}
