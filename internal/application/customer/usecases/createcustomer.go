package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/user"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Nickname string
	UserID   uint
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerData, error) {
	uc.logger.Infow("executing create customer use case", "nickname", cmd.Nickname, "user_id", cmd.UserID)

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

	newCustomer, err := customer.NewCustomer(cmd.Nickname, cmd.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "nickname")
	}

	if err := uc.customerRepo.Create(ctx, newCustomer); err != nil {
		uc.logger.Errorw("failed to create customer", "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created", "customer_id", newCustomer.ID())
	data := toCustomerData(newCustomer)
	return &data, nil
}

func validateCustomerFields(nickname string, userID uint) error {
	if len(nickname) == 0 {
		return errors.NewValidationError("nickname is required", "nickname")
	}
	if len(nickname) > 255 {
		return errors.NewValidationError("nickname exceeds maximum length of 255 characters", "nickname")
	}
	if userID == 0 {
		return errors.NewValidationError("user_id is required", "user_id")
	}
	return nil
}
