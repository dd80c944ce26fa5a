package usecases

import (
	"time"

	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/services/markdown"
)

// TicketData is the use case level view of a ticket. DescriptionHTML
// carries the sanitized markdown rendering of the description.
type TicketData struct {
	ID              uint
	Title           string
	Description     string
	DescriptionHTML string
	SaleID          uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toTicketData(t *ticket.Ticket, md markdown.Service) TicketData {
	data := TicketData{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		SaleID:      t.SaleID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if md != nil {
		if html, err := md.ToHTMLSanitized(t.Description()); err == nil {
			data.DescriptionHTML = html
		}
	}
	return data
}

// Notifier announces ticket creation to the operations mailbox.
type Notifier interface {
	NotifyTicketCreated(ticketID uint, title, descriptionHTML string) error
}
