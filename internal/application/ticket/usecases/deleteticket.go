package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	tx         cascade.TxManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	tx cascade.TxManager,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		tx:         tx,
		logger:     logger,
	}
}

// Execute removes the ticket and its sale links. Sales are left untouched.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, id uint) error {
	t, err := uc.ticketRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", id, "error", err)
		return err
	}
	if t == nil {
		return errors.NewNotFoundError("ticket not found")
	}

	return uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.ticketRepo.ClearSales(ctx, id); err != nil {
			return err
		}
		if err := uc.ticketRepo.Delete(ctx, id); err != nil {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", id, "error", err)
			return err
		}
		uc.logger.Infow("ticket deleted", "ticket_id", id)
		return nil
	})
}
