package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/domain/ticket"
	"residconnect/internal/shared/logger"
)

type mockTicketRepository struct {
	ListByTenantEmailFunc func(ctx context.Context, email string) ([]*ticket.Ticket, error)
	ListByAssigneeFunc    func(ctx context.Context, email string) ([]*ticket.Ticket, error)
	GetByIDFunc           func(ctx context.Context, id string) (*ticket.Ticket, error)
	CreateFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc            func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) ListByTenantEmail(ctx context.Context, email string) ([]*ticket.Ticket, error) {
	if m.ListByTenantEmailFunc != nil {
		return m.ListByTenantEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByAssignee(ctx context.Context, email string) ([]*ticket.Ticket, error) {
	if m.ListByAssigneeFunc != nil {
		return m.ListByAssigneeFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID("recTicket001")
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

type mockTenantRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*tenant.Tenant, error)
	GetByIDFunc     func(ctx context.Context, id string) (*tenant.Tenant, error)
	CreateFunc      func(ctx context.Context, t *tenant.Tenant) error
}

func (m *mockTenantRepository) FindByEmail(ctx context.Context, email string) (*tenant.Tenant, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockTenantRepository) GetByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

type mockProfessionalRepository struct {
	FindByEmailFunc     func(ctx context.Context, email string) (*professional.Professional, error)
	GetByIDFunc         func(ctx context.Context, id string) (*professional.Professional, error)
	FindFirstByTypeFunc func(ctx context.Context, profType professional.Type) (*professional.Professional, error)
	CreateFunc          func(ctx context.Context, p *professional.Professional) error
}

func (m *mockProfessionalRepository) FindByEmail(ctx context.Context, email string) (*professional.Professional, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockProfessionalRepository) GetByID(ctx context.Context, id string) (*professional.Professional, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfessionalRepository) FindFirstByType(ctx context.Context, profType professional.Type) (*professional.Professional, error) {
	if m.FindFirstByTypeFunc != nil {
		return m.FindFirstByTypeFunc(ctx, profType)
	}
	return nil, nil
}

func (m *mockProfessionalRepository) Create(ctx context.Context, p *professional.Professional) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

type mockNotifier struct {
	SendFunc func(to, professionalName, ticketTitle, category, unit string) error
	calls    int
}

func (m *mockNotifier) SendTicketAssigned(to, professionalName, ticketTitle, category, unit string) error {
	m.calls++
	if m.SendFunc != nil {
		return m.SendFunc(to, professionalName, ticketTitle, category, unit)
	}
	return nil
}

type mockInvoiceStore struct {
	SaveInvoiceFunc func(ticketID string, data []byte) (string, error)
}

func (m *mockInvoiceStore) SaveInvoice(ticketID string, data []byte) (string, error) {
	if m.SaveInvoiceFunc != nil {
		return m.SaveInvoiceFunc(ticketID, data)
	}
	return "/uploads/reports/ticket_" + ticketID + ".pdf", nil
}

type mockUploader struct {
	UploadImageFunc func(ctx context.Context, filename, contentType string, data []byte) (string, string, error)
}

func (m *mockUploader) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, string, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, filename, contentType, data)
	}
	return "att001", "https://example.com/att001", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
