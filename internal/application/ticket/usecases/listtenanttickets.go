package usecases

import (
	"context"

	"residconnect/internal/domain/ticket"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type ListTenantTicketsQuery struct {
	TenantEmail string
}

type ListTenantTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTenantTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTenantTicketsUseCase {
	return &ListTenantTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTenantTicketsUseCase) Execute(ctx context.Context, query ListTenantTicketsQuery) ([]TicketView, error) {
	if query.TenantEmail == "" {
		return nil, errors.NewValidationError("email du résident manquant")
	}

	tickets, err := uc.ticketRepo.ListByTenantEmail(ctx, query.TenantEmail)
	if err != nil {
		uc.logger.Errorw("failed to list tenant tickets", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	return toTicketViews(tickets), nil
}
