package usecases

import (
	"context"
	"errors"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/logger"
)

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
	return t.SetID("recTenantNew")
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

// mockHasher treats "hash:" + password as the stored hash.
type mockHasher struct{}

func (m *mockHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if hash != "hash:"+password {
		return errors.New("password verification failed")
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateFunc func(userID, email string, role authorization.UserRole) (string, error)
}

func (m *mockTokenGenerator) Generate(userID, email string, role authorization.UserRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role)
	}
	return "token-" + userID, nil
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
