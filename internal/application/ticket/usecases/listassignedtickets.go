package usecases

import (
	"context"

	"residconnect/internal/domain/ticket"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type ListAssignedTicketsQuery struct {
	AssigneeEmail string
}

// ListAssignedTicketsUseCase returns the professional's work queue,
// filtered on the assigned_to email mirror.
type ListAssignedTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListAssignedTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListAssignedTicketsUseCase {
	return &ListAssignedTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListAssignedTicketsUseCase) Execute(ctx context.Context, query ListAssignedTicketsQuery) ([]TicketView, error) {
	if query.AssigneeEmail == "" {
		return nil, errors.NewValidationError("email du professionnel manquant")
	}

	tickets, err := uc.ticketRepo.ListByAssignee(ctx, query.AssigneeEmail)
	if err != nil {
		uc.logger.Errorw("failed to list assigned tickets", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	return toTicketViews(tickets), nil
}
