package usecases

import (
	"context"

	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type GetSaleUseCase struct {
	saleRepo sale.Repository
	md       markdown.Service
	logger   logger.Interface
}

func NewGetSaleUseCase(saleRepo sale.Repository, md markdown.Service, logger logger.Interface) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
		md:       md,
		logger:   logger,
	}
}

func (uc *GetSaleUseCase) Execute(ctx context.Context, id uint) (*SaleData, error) {
	s, err := uc.saleRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find sale", "sale_id", id, "error", err)
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("sale not found")
	}

	data := toSaleData(s, uc.md)
	return &data, nil
}
