package usecases

import (
	"context"

	"backoffice/internal/domain/material"
	"backoffice/internal/shared/logger"
)

type ListMaterialsUseCase struct {
	materialRepo material.Repository
	logger       logger.Interface
}

func NewListMaterialsUseCase(materialRepo material.Repository, logger logger.Interface) *ListMaterialsUseCase {
	return &ListMaterialsUseCase{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

func (uc *ListMaterialsUseCase) Execute(ctx context.Context) ([]MaterialData, error) {
	materials, err := uc.materialRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list materials", "error", err)
		return nil, err
	}

	result := make([]MaterialData, 0, len(materials))
	for _, m := range materials {
		result = append(result, toMaterialData(m))
	}
	return result, nil
}
