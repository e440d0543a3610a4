package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/domain/ticket"
	vo "residconnect/internal/domain/ticket/valueobjects"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Category    string
	Priority    string
	TenantEmail string
	ImageIDs    []string
}

type CreateTicketResult struct {
	Ticket   TicketView
	Assigned bool
}

type CreateTicketUseCase struct {
	ticketRepo       ticket.Repository
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	notifier         AssignmentNotifier
	logger           logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	tenantRepo tenant.Repository,
	professionalRepo professional.Repository,
	notifier AssignmentNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:       ticketRepo,
		tenantRepo:       tenantRepo,
		professionalRepo: professionalRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

// Execute files the ticket and routes it. Assignment happens exactly
// once, here: the first professional matching the category's required
// type gets the ticket; with no match it stays open and is never
// retried.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	// The unit comes from the tenant record, not the request: tenants
	// cannot file tickets for someone else's apartment.
	unit := uc.resolveUnit(ctx, cmd.TenantEmail)

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Category(cmd.Category),
		priority,
		cmd.TenantEmail,
		unit,
		cmd.ImageIDs,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	assignee := uc.findAssignee(ctx, newTicket.Category())
	if assignee != nil {
		if err := newTicket.Assign(assignee.ID(), assignee.Email()); err != nil {
			uc.logger.Errorw("failed to assign ticket", "professional_id", assignee.ID(), "error", err)
		}
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"category", newTicket.Category().String(),
		"status", newTicket.Status().String(),
	)

	if assignee != nil {
		uc.notifyAssignee(assignee, newTicket)
	}

	return &CreateTicketResult{
		Ticket:   toTicketView(newTicket),
		Assigned: newTicket.IsAssigned(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("Le titre est requis")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("Le titre ne peut pas dépasser 200 caractères")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("La description est requise")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("La description ne peut pas dépasser 5000 caractères")
	}
	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("Catégorie invalide")
	}
	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("Priorité invalide")
	}
	if len(cmd.TenantEmail) == 0 {
		return errors.NewValidationError("email du résident manquant")
	}
	return nil
}

func (uc *CreateTicketUseCase) resolveUnit(ctx context.Context, email string) string {
	t, err := uc.tenantRepo.FindByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("tenant lookup failed, creating ticket without unit", "error", err)
		return ""
	}
	if t == nil {
		return ""
	}
	return t.Unit()
}

// findAssignee is best-effort: a routing failure degrades to an
// unassigned open ticket instead of failing the creation.
func (uc *CreateTicketUseCase) findAssignee(ctx context.Context, category vo.Category) *professional.Professional {
	requiredType, ok := ticket.RequiredProfessionalType(category)
	if !ok {
		return nil
	}

	assignee, err := uc.professionalRepo.FindFirstByType(ctx, requiredType)
	if err != nil {
		uc.logger.Warnw("assignment lookup failed, creating ticket unassigned",
			"category", category.String(),
			"required_type", requiredType.String(),
			"error", err,
		)
		return nil
	}
	if assignee == nil {
		uc.logger.Infow("no professional available for category",
			"category", category.String(),
			"required_type", requiredType.String(),
		)
	}
	return assignee
}

func (uc *CreateTicketUseCase) notifyAssignee(assignee *professional.Professional, t *ticket.Ticket) {
	err := uc.notifier.SendTicketAssigned(
		assignee.Email(),
		assignee.Name(),
		t.Title(),
		t.Category().String(),
		t.Unit(),
	)
	if err != nil {
		uc.logger.Warnw("assignment notification failed",
			"ticket_id", t.ID(),
			"professional_id", assignee.ID(),
			"error", err,
		)
	}
}
