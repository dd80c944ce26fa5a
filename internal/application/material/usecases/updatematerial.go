package usecases

import (
	"context"

	"backoffice/internal/domain/material"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

// UpdateMaterialCommand carries a partial update: a nil designation leaves
// the current value in place.
type UpdateMaterialCommand struct {
	ID          uint
	Designation *string
}

type UpdateMaterialUseCase struct {
	materialRepo material.Repository
	logger       logger.Interface
}

func NewUpdateMaterialUseCase(materialRepo material.Repository, logger logger.Interface) *UpdateMaterialUseCase {
	return &UpdateMaterialUseCase{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (uc *UpdateMaterialUseCase) Execute(ctx context.Context, cmd UpdateMaterialCommand) (*MaterialData, error) {
	uc.logger.Infow("executing update material use case", "material_id", cmd.ID)

	m, err := uc.materialRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find material", "material_id", cmd.ID, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("material not found")
	}

	if cmd.Designation != nil {
		if err := m.UpdateDesignation(*cmd.Designation); err != nil {
			return nil, errors.NewValidationError(err.Error(), "designation")
		}
	}

	if err := uc.materialRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update material", "material_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("material updated", "material_id", m.ID())
	data := toMaterialData(m)
	return &data, nil
}
