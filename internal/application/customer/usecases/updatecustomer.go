package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/user"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

// UpdateCustomerCommand requires every field: a customer update is a full
// replacement, not a patch.
type UpdateCustomerCommand struct {
	ID       uint
	Nickname string
	UserID   uint
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerData, error) {
	uc.logger.Infow("executing update customer use case", "customer_id", cmd.ID)

	c, err := uc.customerRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find customer", "customer_id", cmd.ID, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	if err := validateCustomerFields(cmd.Nickname, cmd.UserID); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check user existence", "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewValidationError("user_id refers to a missing user", "user_id")
	}

	if err := c.Update(cmd.Nickname, cmd.UserID); err != nil {
		return nil, errors.NewValidationError(err.Error(), "nickname")
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("customer updated", "customer_id", c.ID())
	data := toCustomerData(c)
	return &data, nil
}
