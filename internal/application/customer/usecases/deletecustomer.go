package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/customer"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	deleter      *cascade.Deleter
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.Repository,
	deleter *cascade.Deleter,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		deleter:      deleter,
		logger:       logger,
	}
}

// Execute removes the customer and, transitively, their sales and those
// sales' tickets in one transaction.
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id uint) error {
	c, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find customer", "customer_id", id, "error", err)
		return err
	}
	if c == nil {
		return errors.NewNotFoundError("customer not found")
	}

	if err := uc.deleter.DeleteCustomer(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", id, "error", err)
		return err
	}
	return nil
}
