package mappers

import (
	"time"

	"backoffice/internal/domain/sale"
	"backoffice/internal/infrastructure/persistence/models"
)

// SaleMapper handles the conversion between Sale domain entities and persistence models.
// Material links are stored in a separate association table, so ToDomain takes the
// loaded material IDs alongside the row.
type SaleMapper interface {
	ToModel(s *sale.Sale) *models.SaleModel
	ToDomain(model *models.SaleModel, materialIDs []uint) *sale.Sale
}

type SaleMapperImpl struct{}

func NewSaleMapper() SaleMapper {
	return &SaleMapperImpl{}
}

func (m *SaleMapperImpl) ToModel(s *sale.Sale) *models.SaleModel {
	return &models.SaleModel{
		ID:          s.ID(),
		Title:       s.Title(),
		Description: s.Description(),
		CustomerID:  s.CustomerID(),
		CreatedAt:   s.CreatedAt().UnixMilli(),
		UpdatedAt:   s.UpdatedAt().UnixMilli(),
	}
}

func (m *SaleMapperImpl) ToDomain(model *models.SaleModel, materialIDs []uint) *sale.Sale {
	return sale.ReconstructSale(
		model.ID,
		model.Title,
		model.Description,
		model.CustomerID,
		materialIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
