package usecases

import (
	"context"

	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	md         markdown.Service
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, md markdown.Service, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		md:         md,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, id uint) (*TicketData, error) {
	t, err := uc.ticketRepo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to find ticket", "ticket_id", id, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	data := toTicketData(t, uc.md)
	return &data, nil
}
