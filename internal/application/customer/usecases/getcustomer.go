package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uint) (*CustomerData, error) {
	c, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find customer", "customer_id", id, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	data := toCustomerData(c)
	return &data, nil
}
