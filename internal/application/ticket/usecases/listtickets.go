package usecases

import (
	"context"

	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	md         markdown.Service
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, md markdown.Service, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		md:         md,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context) ([]TicketData, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	result := make([]TicketData, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, toTicketData(t, uc.md))
	}
	return result, nil
}
