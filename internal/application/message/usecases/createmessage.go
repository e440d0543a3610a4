package usecases

import (
	"context"
	"time"

	"residconnect/internal/domain/message"
	vo "residconnect/internal/domain/message/valueobjects"
	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type CreateMessageCommand struct {
	Title    string
	Body     string
	Category string
	UserID   string
	Role     authorization.UserRole
}

// MessageView is the enriched read model of a feed message.
type MessageView struct {
	ID            string
	Title         string
	Body          string
	BodyHTML      string
	Category      string
	CreatedByName string
	Residence     string
	CreatedAt     time.Time
}

type CreateMessageUseCase struct {
	messageRepo      message.Repository
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	residenceName    string
	logger           logger.Interface
}

func NewCreateMessageUseCase(
	messageRepo message.Repository,
	tenantRepo tenant.Repository,
	professionalRepo professional.Repository,
	residenceName string,
	logger logger.Interface,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		messageRepo:      messageRepo,
		tenantRepo:       tenantRepo,
		professionalRepo: professionalRepo,
		residenceName:    residenceName,
		logger:           logger,
	}
}

// Execute posts a message to the residence feed. Intervention notices
// are restricted twice: the caller must be a professional, and that
// professional must be the agency.
func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*MessageView, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	category := vo.Category(cmd.Category)

	var tenantID, professionalID, authorName string

	switch cmd.Role {
	case authorization.RoleTenant:
		if category.IsIntervention() {
			return nil, errors.NewForbiddenError("Seuls les gestionnaires peuvent créer des messages d'intervention")
		}
		t, err := uc.tenantRepo.GetByID(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("tenant lookup failed for message", "tenant_id", cmd.UserID, "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if t == nil {
			return nil, errors.NewNotFoundError("Résident non trouvé")
		}
		tenantID = t.ID()
		authorName = t.FirstName() + " " + t.LastName()

	case authorization.RoleProfessional:
		p, err := uc.professionalRepo.GetByID(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("professional lookup failed for message", "professional_id", cmd.UserID, "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if p == nil {
			return nil, errors.NewNotFoundError("Professionnel non trouvé")
		}
		if category.IsIntervention() && !p.Type().IsAgency() {
			return nil, errors.NewForbiddenError("Seuls les gestionnaires (agence) peuvent créer des messages d'intervention")
		}
		professionalID = p.ID()
		authorName = p.Name()
	}

	m, err := message.NewMessage(cmd.Title, cmd.Body, category, tenantID, professionalID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create message", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	uc.logger.Infow("message posted", "message_id", m.ID(), "category", m.Category().String())

	return &MessageView{
		ID:            m.ID(),
		Title:         m.Title(),
		Body:          m.Body(),
		Category:      m.Category().String(),
		CreatedByName: authorName,
		Residence:     uc.residenceName,
		CreatedAt:     m.CreatedAt(),
	}, nil
}

func (uc *CreateMessageUseCase) validateCommand(cmd CreateMessageCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("Le titre est requis")
	}
	if len(cmd.Body) == 0 {
		return errors.NewValidationError("Le message est requis")
	}
	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("Catégorie invalide")
	}
	if cmd.UserID == "" || !cmd.Role.IsValid() {
		return errors.NewValidationError("identifiant utilisateur manquant")
	}
	return nil
}
