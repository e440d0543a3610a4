package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residconnect/internal/domain/tenant"
	apperrors "residconnect/internal/shared/errors"
)

func TestRegisterUseCase_Success(t *testing.T) {
	var created *tenant.Tenant
	tenantRepo := &mockTenantRepository{
		CreateFunc: func(ctx context.Context, tn *tenant.Tenant) error {
			created = tn
			return tn.SetID("recTenantNew")
		},
	}

	uc := NewRegisterUseCase(tenantRepo, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:         "nadia@example.com",
		Password:      "motdepasse",
		FirstName:     "Nadia",
		LastName:      "Benali",
		Unit:          "C12",
		Phone:         "0611223344",
		ResidenceName: "Résidence Les Lilas",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-recTenantNew", result.Token)
	assert.Equal(t, "recTenantNew", result.User.ID)
	assert.Equal(t, "Nadia", result.User.FirstName)

	require.NotNil(t, created)
	assert.Equal(t, "hash:motdepasse", created.PasswordHash())
	assert.True(t, created.IsActive())
}

func TestRegisterUseCase_AcceptsShortPassword(t *testing.T) {
	uc := NewRegisterUseCase(&mockTenantRepository{}, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Email:         "a@b.com",
		Password:      "secret1",
		FirstName:     "A",
		LastName:      "B",
		ResidenceName: "Tower1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Tower1", result.User.ResidenceName)
}

func TestRegisterUseCase_DuplicateEmail(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*tenant.Tenant, error) {
			return activeTenant(t), nil
		},
	}

	uc := NewRegisterUseCase(tenantRepo, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Email:         "alice@example.com",
		Password:      "motdepasse",
		FirstName:     "Alice",
		LastName:      "Martin",
		ResidenceName: "Résidence Les Lilas",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Equal(t, "Un compte avec cet email existe déjà", apperrors.GetAppError(err).Message)
}

func TestRegisterUseCase_ValidationErrors(t *testing.T) {
	uc := NewRegisterUseCase(&mockTenantRepository{}, &mockHasher{}, &mockTokenGenerator{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  RegisterCommand
	}{
		{"missing email", RegisterCommand{Password: "motdepasse", FirstName: "A", LastName: "B", ResidenceName: "R"}},
		{"missing password", RegisterCommand{Email: "a@b.fr", FirstName: "A", LastName: "B", ResidenceName: "R"}},
		{"missing names", RegisterCommand{Email: "a@b.fr", Password: "motdepasse", ResidenceName: "R"}},
		{"missing residence", RegisterCommand{Email: "a@b.fr", Password: "motdepasse", FirstName: "A", LastName: "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}

func TestGetProfileUseCase_TenantNotFound(t *testing.T) {
	uc := NewGetProfileUseCase(&mockTenantRepository{}, &mockProfessionalRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), GetProfileQuery{UserID: "recMissing", Role: "tenant"})

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Equal(t, "Résident non trouvé", apperrors.GetAppError(err).Message)
}

func TestGetProfileUseCase_LoadsTenantByID(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*tenant.Tenant, error) {
			return activeTenant(t), nil
		},
	}

	uc := NewGetProfileUseCase(tenantRepo, &mockProfessionalRepository{}, &mockLogger{})

	info, err := uc.Execute(context.Background(), GetProfileQuery{UserID: "recTenant1", Role: "tenant"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Email)
	assert.Equal(t, "Résidence Les Lilas", info.ResidenceName)
}
