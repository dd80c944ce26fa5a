package usecases

import (
	"context"

	"backoffice/internal/domain/material"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type GetMaterialUseCase struct {
	materialRepo material.Repository
	logger       logger.Interface
}

func NewGetMaterialUseCase(materialRepo material.Repository, logger logger.Interface) *GetMaterialUseCase {
	return &GetMaterialUseCase{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (uc *GetMaterialUseCase) Execute(ctx context.Context, id uint) (*MaterialData, error) {
	m, err := uc.materialRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find material", "material_id", id, "error", err)
		return nil, err
	}
	if m == nil {
		return nil, errors.NewNotFoundError("material not found")
	}

	data := toMaterialData(m)
	return &data, nil
}
