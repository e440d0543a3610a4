package usecases

import (
	"context"

	"residconnect/internal/domain/ticket"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

// GetTicketUseCase reads one ticket. Any authenticated caller whose
// role passed the route gate may read any ticket; tickets of a
// residence are visible to all of its residents.
type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketView, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("identifiant du ticket manquant")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket non trouvé")
	}

	view := toTicketView(t)
	return &view, nil
}
