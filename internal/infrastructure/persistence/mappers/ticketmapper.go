package mappers

import (
	"time"

	"backoffice/internal/domain/ticket"
	"backoffice/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
// Sale links live in a separate association table, so ToDomain takes the loaded
// sale IDs alongside the row.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel, saleIDs []uint) *ticket.Ticket
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, saleIDs []uint) *ticket.Ticket {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		saleIDs,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
