package repository

import (
	"context"
	"fmt"

	"residconnect/internal/domain/message"
	vo "residconnect/internal/domain/message/valueobjects"
	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
)

type MessageRepository struct {
	client airtable.Client
	schema *airtable.Schema
	logger logger.Interface
}

func NewMessageRepository(client airtable.Client, schema *airtable.Schema, log logger.Interface) *MessageRepository {
	return &MessageRepository{
		client: client,
		schema: schema,
		logger: log,
	}
}

var _ message.Repository = (*MessageRepository)(nil)

func (r *MessageRepository) ListAll(ctx context.Context) ([]*message.Message, error) {
	records, err := r.client.List(ctx, r.schema.Messages.ID, "", newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	return r.toDomainList(records), nil
}

func (r *MessageRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*message.Message, error) {
	filter := fmt.Sprintf(`{%s}="%s"`, airtable.FieldMessageCategory, escapeFormulaString(category.String()))

	records, err := r.client.List(ctx, r.schema.Messages.ID, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to query messages by category: %w", err)
	}
	return r.toDomainList(records), nil
}

func (r *MessageRepository) Create(ctx context.Context, m *message.Message) error {
	f := r.schema.Messages.Fields
	fields := map[string]interface{}{
		f.Title:    m.Title(),
		f.Body:     m.Body(),
		f.Category: m.Category().String(),
	}

	if m.TenantID() != "" {
		fields[f.Tenant] = []string{m.TenantID()}
	}
	if m.ProfessionalID() != "" {
		fields[f.Professional] = []string{m.ProfessionalID()}
	}

	record, err := r.client.Create(ctx, r.schema.Messages.ID, fields)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return m.SetID(record.ID)
}

func (r *MessageRepository) toDomainList(records []airtable.Record) []*message.Message {
	messages := make([]*message.Message, 0, len(records))
	for i := range records {
		record := &records[i]
		m, err := message.ReconstructMessage(
			record.ID,
			getString(record.Fields, airtable.FieldMessageTitle),
			getString(record.Fields, airtable.FieldMessageBody),
			vo.Category(getString(record.Fields, airtable.FieldMessageCategory)),
			getFirstLink(record.Fields, airtable.FieldMessageTenant),
			getFirstLink(record.Fields, airtable.FieldProfessional),
			record.CreatedTime,
		)
		if err != nil {
			r.logger.Warnw("skipping malformed message record", "record_id", record.ID, "error", err)
			continue
		}
		messages = append(messages, m)
	}
	return messages
}
