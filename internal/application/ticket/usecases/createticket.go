package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/sale"
	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	SaleID      uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	saleRepo   sale.Repository
	tx         cascade.TxManager
	md         markdown.Service
	notifier   Notifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	saleRepo sale.Repository,
	tx cascade.TxManager,
	md markdown.Service,
	notifier Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		saleRepo:   saleRepo,
		tx:         tx,
		md:         md,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute creates the ticket and links it to its sale in one transaction.
// The notification mail is best effort and never fails the request.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketData, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "sale_id", cmd.SaleID)

	if err := validateTicketFields(cmd.Title, cmd.Description, cmd.SaleID); err != nil {
		return nil, err
	}

	exists, err := uc.saleRepo.ExistsByID(ctx, cmd.SaleID)
	if err != nil {
		uc.logger.Errorw("failed to check sale existence", "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewValidationError("sale_id refers to a missing sale", "sale_id")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.SaleID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "title")
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
			return err
		}
		return uc.ticketRepo.SyncSales(ctx, newTicket.ID(), newTicket.SaleIDs())
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "sale_id", cmd.SaleID)
	data := toTicketData(newTicket, uc.md)

	if uc.notifier != nil {
		if err := uc.notifier.NotifyTicketCreated(data.ID, data.Title, data.DescriptionHTML); err != nil {
			uc.logger.Warnw("failed to send ticket notification", "ticket_id", data.ID, "error", err)
		}
	}

	return &data, nil
}

func validateTicketFields(title, description string, saleID uint) error {
	if len(title) == 0 {
		return errors.NewValidationError("title is required", "title")
	}
	if len(title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters", "title")
	}
	if len(description) == 0 {
		return errors.NewValidationError("description is required", "description")
	}
	if saleID == 0 {
		return errors.NewValidationError("sale_id is required", "sale_id")
	}
	return nil
}
