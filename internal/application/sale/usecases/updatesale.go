package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

// UpdateSaleCommand requires every scalar field. MaterialIDs replaces the
// linked material set: links absent from the list are dropped.
type UpdateSaleCommand struct {
	ID          uint
	Title       string
	Description string
	CustomerID  uint
	MaterialIDs []uint
}

type UpdateSaleUseCase struct {
	saleRepo     sale.Repository
	customerRepo customer.Repository
	materialRepo material.Repository
	tx           cascade.TxManager
	md           markdown.Service
	logger       logger.Interface
}

func NewUpdateSaleUseCase(
	saleRepo sale.Repository,
	customerRepo customer.Repository,
	materialRepo material.Repository,
	tx cascade.TxManager,
	md markdown.Service,
	logger logger.Interface,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		materialRepo: materialRepo,
		tx:           tx,
		md:           md,
		logger:       logger,
	}
}

func (uc *UpdateSaleUseCase) Execute(ctx context.Context, cmd UpdateSaleCommand) (*SaleData, error) {
	uc.logger.Infow("executing update sale use case", "sale_id", cmd.ID)

	s, err := uc.saleRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find sale", "sale_id", cmd.ID, "error", err)
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("sale not found")
	}

	if err := validateSaleFields(cmd.Title, cmd.Description, cmd.CustomerID); err != nil {
		return nil, err
	}
	if err := checkSaleReferences(ctx, uc.customerRepo, uc.materialRepo, cmd.CustomerID, cmd.MaterialIDs); err != nil {
		return nil, err
	}

	if err := s.Update(cmd.Title, cmd.Description, cmd.CustomerID); err != nil {
		return nil, errors.NewValidationError(err.Error(), "title")
	}
	s.SetMaterialIDs(cmd.MaterialIDs)

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.saleRepo.Update(ctx, s); err != nil {
			return err
		}
		return uc.saleRepo.SyncMaterials(ctx, s.ID(), s.MaterialIDs())
	})
	if err != nil {
		uc.logger.Errorw("failed to update sale", "sale_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("sale updated", "sale_id", s.ID(), "materials", len(s.MaterialIDs()))
	data := toSaleData(s, uc.md)
	return &data, nil
}
