package usecases

import (
	"context"

	"residconnect/internal/domain/message"
	vo "residconnect/internal/domain/message/valueobjects"
	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/logger"
)

type mockMessageRepository struct {
	ListAllFunc        func(ctx context.Context) ([]*message.Message, error)
	ListByCategoryFunc func(ctx context.Context, category vo.Category) ([]*message.Message, error)
	CreateFunc         func(ctx context.Context, m *message.Message) error
}

func (m *mockMessageRepository) ListAll(ctx context.Context) ([]*message.Message, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageRepository) ListByCategory(ctx context.Context, category vo.Category) ([]*message.Message, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, category)
	}
	return nil, nil
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *message.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return msg.SetID("recMessage001")
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

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
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
