package usecases

import (
	"time"

	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/services/markdown"
)

// SaleData is the use case level view of a sale. DescriptionHTML carries
// the sanitized markdown rendering of the description.
type SaleData struct {
	ID              uint
	Title           string
	Description     string
	DescriptionHTML string
	CustomerID      uint
	MaterialIDs     []uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toSaleData(s *sale.Sale, md markdown.Service) SaleData {
	data := SaleData{
		ID:          s.ID(),
		Title:       s.Title(),
		Description: s.Description(),
		CustomerID:  s.CustomerID(),
		MaterialIDs: s.MaterialIDs(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
	if md != nil {
		if html, err := md.ToHTMLSanitized(s.Description()); err == nil {
			data.DescriptionHTML = html
		}
	}
	return data
}
