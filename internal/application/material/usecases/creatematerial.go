package usecases

import (
	"context"

	"backoffice/internal/domain/material"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type CreateMaterialCommand struct {
	Designation string
}

type CreateMaterialUseCase struct {
	materialRepo material.Repository
	logger       logger.Interface
}

func NewCreateMaterialUseCase(materialRepo material.Repository, logger logger.Interface) *CreateMaterialUseCase {
	return &CreateMaterialUseCase{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (uc *CreateMaterialUseCase) Execute(ctx context.Context, cmd CreateMaterialCommand) (*MaterialData, error) {
	uc.logger.Infow("executing create material use case", "designation", cmd.Designation)

	newMaterial, err := material.NewMaterial(cmd.Designation)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "designation")
	}

	if err := uc.materialRepo.Create(ctx, newMaterial); err != nil {
		uc.logger.Errorw("failed to create material", "error", err)
		return nil, err
	}

	uc.logger.Infow("material created", "material_id", newMaterial.ID())
	data := toMaterialData(newMaterial)
	return &data, nil
}
