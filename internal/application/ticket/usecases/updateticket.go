package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/ticket"
	vo "residconnect/internal/domain/ticket/valueobjects"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

const maxInvoiceSize = 10 << 20

// UpdateTicketCommand carries only the fields present in the request;
// nil pointers leave the ticket untouched.
type UpdateTicketCommand struct {
	TicketID        string
	Status          *string
	ResolutionNotes *string
	AssignedTo      *string
	InvoiceData     []byte
	InvoiceType     string
}

type UpdateTicketUseCase struct {
	ticketRepo       ticket.Repository
	professionalRepo professional.Repository
	invoices         InvoiceStore
	logger           logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	professionalRepo professional.Repository,
	invoices InvoiceStore,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:       ticketRepo,
		professionalRepo: professionalRepo,
		invoices:         invoices,
		logger:           logger,
	}
}

// Execute applies a professional's changes. The status set and the
// forward-only transition table are both enforced; the invoice is
// validated before anything touches the store.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketView, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket for update", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket non trouvé")
	}

	if cmd.Status != nil {
		if err := t.ChangeStatus(vo.TicketStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError("Transition de statut invalide", err.Error())
		}
	}

	if cmd.ResolutionNotes != nil {
		t.SetResolutionNotes(*cmd.ResolutionNotes)
	}

	if cmd.AssignedTo != nil {
		uc.reassign(ctx, t, *cmd.AssignedTo)
	}

	if len(cmd.InvoiceData) > 0 {
		url, err := uc.invoices.SaveInvoice(t.ID(), cmd.InvoiceData)
		if err != nil {
			uc.logger.Errorw("failed to store invoice", "ticket_id", t.ID(), "error", err)
			return nil, errors.NewInternalError("Erreur serveur")
		}
		if err := t.AttachInvoice(url); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "status", t.Status().String())

	view := toTicketView(t)
	return &view, nil
}

func (uc *UpdateTicketUseCase) validateCommand(cmd UpdateTicketCommand) error {
	if cmd.TicketID == "" {
		return errors.NewValidationError("identifiant du ticket manquant")
	}
	if cmd.Status != nil && !vo.TicketStatus(*cmd.Status).IsValid() {
		return errors.NewValidationError("Statut invalide")
	}
	if len(cmd.InvoiceData) > 0 {
		if cmd.InvoiceType != "application/pdf" {
			return errors.NewValidationError("La facture doit être un fichier PDF")
		}
		if len(cmd.InvoiceData) > maxInvoiceSize {
			return errors.NewValidationError("La facture ne peut pas dépasser 10 Mo")
		}
	}
	return nil
}

// reassign re-resolves the record link from the handler email. An email
// that matches no professional keeps the free-text assignee and clears
// the link.
func (uc *UpdateTicketUseCase) reassign(ctx context.Context, t *ticket.Ticket, email string) {
	if email == "" {
		t.Reassign("", "")
		return
	}

	p, err := uc.professionalRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("assignee lookup failed, keeping email only", "email", email, "error", err)
		t.Reassign(email, "")
		return
	}
	if p == nil {
		t.Reassign(email, "")
		return
	}
	t.Reassign(p.Email(), p.ID())
}
