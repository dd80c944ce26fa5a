package usecases

import (
	"context"

	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type ListSalesUseCase struct {
	saleRepo sale.Repository
	md       markdown.Service
	logger   logger.Interface
}

func NewListSalesUseCase(saleRepo sale.Repository, md markdown.Service, logger logger.Interface) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
		md:       md,
		logger:   logger,
	}
}

func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]SaleData, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list sales", "error", err)
		return nil, err
	}

	result := make([]SaleData, 0, len(sales))
	for _, s := range sales {
		result = append(result, toSaleData(s, uc.md))
	}
	return result, nil
}
