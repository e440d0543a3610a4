package repository

import (
	"context"
	"fmt"

	"residconnect/internal/domain/tenant"
	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

type TenantRepository struct {
	client airtable.Client
	schema *airtable.Schema
	logger logger.Interface
}

func NewTenantRepository(client airtable.Client, schema *airtable.Schema, log logger.Interface) *TenantRepository {
	return &TenantRepository{
		client: client,
		schema: schema,
		logger: log,
	}
}

var _ tenant.Repository = (*TenantRepository)(nil)

func (r *TenantRepository) FindByEmail(ctx context.Context, email string) (*tenant.Tenant, error) {
	normalized := utils.NormalizeEmail(email)

	records, err := r.client.List(ctx, r.schema.Tenants.ID, emailFilter(airtable.FieldEmail, normalized), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants by email: %w", err)
	}

	for i := range records {
		if utils.EmailsEqual(getString(records[i].Fields, airtable.FieldEmail), normalized) {
			return r.toDomain(&records[i])
		}
	}

	return nil, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	record, err := r.client.Get(ctx, r.schema.Tenants.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return r.toDomain(record)
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	f := r.schema.Tenants.Fields
	fields := map[string]interface{}{
		f.Email:         t.Email(),
		f.PasswordHash:  t.PasswordHash(),
		f.FirstName:     t.FirstName(),
		f.LastName:      t.LastName(),
		f.Unit:          t.Unit(),
		f.Phone:         t.Phone(),
		f.ResidenceName: t.ResidenceName(),
		f.Status:        t.Status().String(),
	}

	record, err := r.client.Create(ctx, r.schema.Tenants.ID, fields)
	if err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return t.SetID(record.ID)
}

func (r *TenantRepository) toDomain(record *airtable.Record) (*tenant.Tenant, error) {
	t, err := tenant.ReconstructTenant(
		record.ID,
		getString(record.Fields, airtable.FieldEmail),
		getString(record.Fields, airtable.FieldPasswordHash),
		getString(record.Fields, airtable.FieldFirstName),
		getString(record.Fields, airtable.FieldLastName),
		getString(record.Fields, airtable.FieldUnit),
		getString(record.Fields, airtable.FieldPhone),
		getString(record.Fields, airtable.FieldResidenceName),
		tenant.Status(getString(record.Fields, airtable.FieldStatus)),
		record.CreatedTime,
	)
	if err != nil {
		r.logger.Warnw("skipping malformed tenant record", "record_id", record.ID, "error", err)
		return nil, fmt.Errorf("malformed tenant record %s: %w", record.ID, err)
	}
	return t, nil
}
