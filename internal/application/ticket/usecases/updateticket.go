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

// UpdateTicketCommand requires every field. The sale link is replaced:
// after the update the ticket is linked to exactly SaleID.
type UpdateTicketCommand struct {
	ID          uint
	Title       string
	Description string
	SaleID      uint
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	saleRepo   sale.Repository
	tx         cascade.TxManager
	md         markdown.Service
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	saleRepo sale.Repository,
	tx cascade.TxManager,
	md markdown.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		saleRepo:   saleRepo,
		tx:         tx,
		md:         md,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketData, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.ID)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", cmd.ID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

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

	if err := t.Update(cmd.Title, cmd.Description, cmd.SaleID); err != nil {
		return nil, errors.NewValidationError(err.Error(), "title")
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			return err
		}
		return uc.ticketRepo.SyncSales(ctx, t.ID(), t.SaleIDs())
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "sale_id", cmd.SaleID)
	data := toTicketData(t, uc.md)
	return &data, nil
}
