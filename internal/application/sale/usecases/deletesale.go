package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type DeleteSaleUseCase struct {
	saleRepo sale.Repository
	deleter  *cascade.Deleter
	logger   logger.Interface
}

func NewDeleteSaleUseCase(
	saleRepo sale.Repository,
	deleter *cascade.Deleter,
	logger logger.Interface,
) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
		deleter:  deleter,
		logger:   logger,
	}
}

// Execute removes the sale, its tickets and its association rows in one
// transaction.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, id uint) error {
	s, err := uc.saleRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find sale", "sale_id", id, "error", err)
		return err
	}
	if s == nil {
		return errors.NewNotFoundError("sale not found")
	}

	if err := uc.deleter.DeleteSale(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete sale", "sale_id", id, "error", err)
		return err
	}
	return nil
}
