package usecases

import (
	"context"

	"residconnect/internal/domain/message"
	vo "residconnect/internal/domain/message/valueobjects"
	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type ListMessagesQuery struct {
	// Category filters the feed; an unknown value falls back to the
	// full feed rather than erroring.
	Category string
}

type ListMessagesUseCase struct {
	messageRepo      message.Repository
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	renderer         HTMLRenderer
	residenceName    string
	logger           logger.Interface
}

func NewListMessagesUseCase(
	messageRepo message.Repository,
	tenantRepo tenant.Repository,
	professionalRepo professional.Repository,
	renderer HTMLRenderer,
	residenceName string,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo:      messageRepo,
		tenantRepo:       tenantRepo,
		professionalRepo: professionalRepo,
		renderer:         renderer,
		residenceName:    residenceName,
		logger:           logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]MessageView, error) {
	var messages []*message.Message
	var err error

	if category := vo.Category(query.Category); query.Category != "" && category.IsValid() {
		messages, err = uc.messageRepo.ListByCategory(ctx, category)
	} else {
		messages, err = uc.messageRepo.ListAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list messages", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	names := newAuthorNameCache(uc.tenantRepo, uc.professionalRepo, uc.logger)

	views := make([]MessageView, len(messages))
	for i, m := range messages {
		views[i] = MessageView{
			ID:            m.ID(),
			Title:         m.Title(),
			Body:          m.Body(),
			BodyHTML:      uc.renderBody(m),
			Category:      m.Category().String(),
			CreatedByName: names.resolve(ctx, m),
			Residence:     uc.residenceName,
			CreatedAt:     m.CreatedAt(),
		}
	}

	return views, nil
}

func (uc *ListMessagesUseCase) renderBody(m *message.Message) string {
	html, err := uc.renderer.ToHTMLSanitized(m.Body())
	if err != nil {
		uc.logger.Warnw("failed to render message body", "message_id", m.ID(), "error", err)
		return ""
	}
	return html
}

// fallbackAuthorName labels messages whose author link cannot be
// resolved anymore.
const fallbackAuthorName = "Utilisateur"

// authorNameCache memoizes author lookups so a feed with many messages
// from the same author costs one store read per author.
type authorNameCache struct {
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	logger           logger.Interface
	tenants          map[string]string
	professionals    map[string]string
}

func newAuthorNameCache(tr tenant.Repository, pr professional.Repository, log logger.Interface) *authorNameCache {
	return &authorNameCache{
		tenantRepo:       tr,
		professionalRepo: pr,
		logger:           log,
		tenants:          make(map[string]string),
		professionals:    make(map[string]string),
	}
}

func (c *authorNameCache) resolve(ctx context.Context, m *message.Message) string {
	if m.AuthoredByTenant() {
		return c.tenantName(ctx, m.TenantID())
	}
	return c.professionalName(ctx, m.ProfessionalID())
}

func (c *authorNameCache) tenantName(ctx context.Context, id string) string {
	if id == "" {
		return fallbackAuthorName
	}
	if name, ok := c.tenants[id]; ok {
		return name
	}
	name := fallbackAuthorName
	t, err := c.tenantRepo.GetByID(ctx, id)
	if err != nil {
		c.logger.Warnw("author lookup failed", "tenant_id", id, "error", err)
	} else if t != nil {
		name = t.FirstName() + " " + t.LastName()
	}
	c.tenants[id] = name
	return name
}

func (c *authorNameCache) professionalName(ctx context.Context, id string) string {
	if id == "" {
		return fallbackAuthorName
	}
	if name, ok := c.professionals[id]; ok {
		return name
	}
	name := fallbackAuthorName
	p, err := c.professionalRepo.GetByID(ctx, id)
	if err != nil {
		c.logger.Warnw("author lookup failed", "professional_id", id, "error", err)
	} else if p != nil {
		name = p.Name()
	}
	c.professionals[id] = name
	return name
}
