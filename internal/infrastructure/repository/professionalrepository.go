package repository

import (
	"context"
	"fmt"

	"residconnect/internal/domain/professional"
	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
	"residconnect/internal/shared/utils"
)

type ProfessionalRepository struct {
	client airtable.Client
	schema *airtable.Schema
	logger logger.Interface
}

func NewProfessionalRepository(client airtable.Client, schema *airtable.Schema, log logger.Interface) *ProfessionalRepository {
	return &ProfessionalRepository{
		client: client,
		schema: schema,
		logger: log,
	}
}

var _ professional.Repository = (*ProfessionalRepository)(nil)

func (r *ProfessionalRepository) FindByEmail(ctx context.Context, email string) (*professional.Professional, error) {
	normalized := utils.NormalizeEmail(email)

	records, err := r.client.List(ctx, r.schema.Professionals.ID, emailFilter(airtable.FieldEmail, normalized), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals by email: %w", err)
	}

	for i := range records {
		if utils.EmailsEqual(getString(records[i].Fields, airtable.FieldEmail), normalized) {
			return r.toDomain(&records[i])
		}
	}

	return nil, nil
}

func (r *ProfessionalRepository) GetByID(ctx context.Context, id string) (*professional.Professional, error) {
	record, err := r.client.Get(ctx, r.schema.Professionals.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return r.toDomain(record)
}

// FindFirstByType relies on the store's enumeration order, which is
// stable for a given table. This is what makes auto-assignment
// deterministic.
func (r *ProfessionalRepository) FindFirstByType(ctx context.Context, profType professional.Type) (*professional.Professional, error) {
	filter := fmt.Sprintf(`{%s}="%s"`, airtable.FieldType, escapeFormulaString(profType.String()))

	records, err := r.client.List(ctx, r.schema.Professionals.ID, filter, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals by type: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return r.toDomain(&records[0])
}

func (r *ProfessionalRepository) Create(ctx context.Context, p *professional.Professional) error {
	f := r.schema.Professionals.Fields
	fields := map[string]interface{}{
		f.Email:        p.Email(),
		f.PasswordHash: p.PasswordHash(),
		f.Name:         p.Name(),
		f.Type:         p.Type().String(),
		f.Phone:        p.Phone(),
		f.AgencyEmail:  p.AgencyEmail(),
		f.Specialties:  p.Specialties(),
	}

	record, err := r.client.Create(ctx, r.schema.Professionals.ID, fields)
	if err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}

	return p.SetID(record.ID)
}

func (r *ProfessionalRepository) toDomain(record *airtable.Record) (*professional.Professional, error) {
	p, err := professional.ReconstructProfessional(
		record.ID,
		getString(record.Fields, airtable.FieldEmail),
		getString(record.Fields, airtable.FieldPasswordHash),
		getString(record.Fields, airtable.FieldName),
		professional.Type(getString(record.Fields, airtable.FieldType)),
		getString(record.Fields, airtable.FieldPhone),
		getString(record.Fields, airtable.FieldAgencyEmail),
		getString(record.Fields, airtable.FieldSpecialties),
		record.CreatedTime,
	)
	if err != nil {
		r.logger.Warnw("skipping malformed professional record", "record_id", record.ID, "error", err)
		return nil, fmt.Errorf("malformed professional record %s: %w", record.ID, err)
	}
	return p, nil
}
