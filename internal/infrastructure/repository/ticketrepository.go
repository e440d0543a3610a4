package repository

import (
	"context"
	"fmt"

	"residconnect/internal/domain/ticket"
	vo "residconnect/internal/domain/ticket/valueobjects"
	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

type TicketRepository struct {
	client airtable.Client
	schema *airtable.Schema
	logger logger.Interface
}

func NewTicketRepository(client airtable.Client, schema *airtable.Schema, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		client: client,
		schema: schema,
		logger: log,
	}
}

var _ ticket.Repository = (*TicketRepository)(nil)

func (r *TicketRepository) ListByTenantEmail(ctx context.Context, email string) ([]*ticket.Ticket, error) {
	normalized := utils.NormalizeEmail(email)

	records, err := r.client.List(ctx, r.schema.Tickets.ID, emailFilter(airtable.FieldTenantEmail, normalized), newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets by tenant: %w", err)
	}

	return r.toDomainList(records)
}

func (r *TicketRepository) ListByAssignee(ctx context.Context, email string) ([]*ticket.Ticket, error) {
	normalized := utils.NormalizeEmail(email)

	records, err := r.client.List(ctx, r.schema.Tickets.ID, emailFilter(airtable.FieldAssignedTo, normalized), newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets by assignee: %w", err)
	}

	return r.toDomainList(records)
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	record, err := r.client.Get(ctx, r.schema.Tickets.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return r.toDomain(record)
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	f := r.schema.Tickets.Fields
	fields := map[string]interface{}{
		f.Title:       t.Title(),
		f.Description: t.Description(),
		f.Category:    t.Category().String(),
		f.Status:      t.Status().String(),
		f.Priority:    t.Priority().String(),
		f.TenantEmail: t.TenantEmail(),
		f.Unit:        t.Unit(),
	}

	if t.ProfessionalID() != "" {
		fields[f.Professional] = []string{t.ProfessionalID()}
	}
	if t.AssignedTo() != "" {
		fields[f.AssignedTo] = t.AssignedTo()
	}
	if ids := t.ImageIDs(); len(ids) > 0 {
		attachments := make([]map[string]interface{}, len(ids))
		for i, id := range ids {
			attachments[i] = map[string]interface{}{"id": id}
		}
		fields[f.Images] = attachments
	}

	record, err := r.client.Create(ctx, r.schema.Tickets.ID, fields)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(record.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if t.ID() == "" {
		return fmt.Errorf("ticket has no record ID")
	}

	f := r.schema.Tickets.Fields
	fields := map[string]interface{}{
		f.Status:          t.Status().String(),
		f.AssignedTo:      t.AssignedTo(),
		f.ResolutionNotes: t.ResolutionNotes(),
		f.UpdatedAt:       t.UpdatedAt().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	if t.ProfessionalID() != "" {
		fields[f.Professional] = []string{t.ProfessionalID()}
	} else {
		fields[f.Professional] = []string{}
	}
	if t.ResolvedAt() != nil {
		fields[f.ResolvedAt] = t.ResolvedAt().UTC().Format("2006-01-02T15:04:05.000Z")
	}
	if t.InvoiceURL() != "" {
		fields[f.InvoiceURL] = t.InvoiceURL()
	}

	if _, err := r.client.Update(ctx, r.schema.Tickets.ID, t.ID(), fields); err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) toDomainList(records []airtable.Record) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(records))
	for i := range records {
		t, err := r.toDomain(&records[i])
		if err != nil {
			// A single bad row must not hide the rest of the queue.
			continue
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) toDomain(record *airtable.Record) (*ticket.Ticket, error) {
	updatedAt := record.CreatedTime
	if u := getTime(record.Fields, airtable.FieldUpdatedAt); u != nil {
		updatedAt = *u
	}

	imageIDs := attachmentIDs(record.Fields, airtable.FieldImages)

	t, err := ticket.ReconstructTicket(
		record.ID,
		getString(record.Fields, airtable.FieldTitle),
		getString(record.Fields, airtable.FieldDescription),
		vo.Category(getString(record.Fields, airtable.FieldCategory)),
		vo.TicketStatus(getString(record.Fields, airtable.FieldStatus)),
		priorityOrDefault(getString(record.Fields, airtable.FieldPriority)),
		getString(record.Fields, airtable.FieldTenantEmail),
		getString(record.Fields, airtable.FieldUnit),
		getFirstLink(record.Fields, airtable.FieldProfessional),
		getString(record.Fields, airtable.FieldAssignedTo),
		getString(record.Fields, airtable.FieldResolutionNotes),
		imageIDs,
		getString(record.Fields, airtable.FieldInvoiceURL),
		record.CreatedTime,
		updatedAt,
		getTime(record.Fields, airtable.FieldResolvedAt),
	)
	if err != nil {
		r.logger.Warnw("skipping malformed ticket record", "record_id", record.ID, "error", err)
		return nil, fmt.Errorf("malformed ticket record %s: %w", record.ID, err)
	}
	return t, nil
}

func priorityOrDefault(s string) vo.Priority {
	p := vo.Priority(s)
	if !p.IsValid() {
		return vo.PriorityMedium
	}
	return p
}

// attachmentIDs reads an attachment field, which the store returns as
// an array of objects carrying at least an id.
func attachmentIDs(fields map[string]interface{}, key string) []string {
	raw, ok := fields[key].([]interface{})
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		obj, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := obj["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
