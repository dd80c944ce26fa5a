package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/shared/logger"
)

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]CustomerData, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	result := make([]CustomerData, 0, len(customers))
	for _, c := range customers {
		result = append(result, toCustomerData(c))
	}
	return result, nil
}
