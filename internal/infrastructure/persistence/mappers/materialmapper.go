package mappers

import (
	"time"

	"backoffice/internal/domain/material"
	"backoffice/internal/infrastructure/persistence/models"
)

// MaterialMapper handles the conversion between Material domain entities and persistence models.
type MaterialMapper interface {
	ToModel(m *material.Material) *models.MaterialModel
	ToDomain(model *models.MaterialModel) *material.Material
}

type MaterialMapperImpl struct{}

func NewMaterialMapper() MaterialMapper {
	return &MaterialMapperImpl{}
}

func (mm *MaterialMapperImpl) ToModel(m *material.Material) *models.MaterialModel {
	return &models.MaterialModel{
		ID:          m.ID(),
		Designation: m.Designation(),
		CreatedAt:   m.CreatedAt().UnixMilli(),
		UpdatedAt:   m.UpdatedAt().UnixMilli(),
	}
}

func (mm *MaterialMapperImpl) ToDomain(model *models.MaterialModel) *material.Material {
	return material.ReconstructMaterial(
		model.ID,
		model.Designation,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
