package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type DeleteMaterialUseCase struct {
	materialRepo material.Repository
	saleRepo     sale.Repository
	tx           cascade.TxManager
	logger       logger.Interface
}

func NewDeleteMaterialUseCase(
	materialRepo material.Repository,
	saleRepo sale.Repository,
	tx cascade.TxManager,
	logger logger.Interface,
) *DeleteMaterialUseCase {
	return &DeleteMaterialUseCase{
		materialRepo: materialRepo,
		saleRepo:     saleRepo,
		tx:           tx,
		logger:       logger,
	}
}

// Execute removes the material and detaches it from every sale. Sales
// themselves are left untouched.
func (uc *DeleteMaterialUseCase) Execute(ctx context.Context, id uint) error {
	m, err := uc.materialRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find material", "material_id", id, "error", err)
		return err
	}
	if m == nil {
		return errors.NewNotFoundError("material not found")
	}

	return uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.saleRepo.DetachMaterial(ctx, id); err != nil {
			uc.logger.Errorw("failed to detach material from sales", "material_id", id, "error", err)
			return err
		}
		if err := uc.materialRepo.Delete(ctx, id); err != nil {
			uc.logger.Errorw("failed to delete material", "material_id", id, "error", err)
			return err
		}
		uc.logger.Infow("material deleted", "material_id", id)
		return nil
	})
}
