package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	Role     string
}

// UserInfo is the role-shaped account view returned alongside a token.
// Tenant fields and professional fields are mutually exclusive.
type UserInfo struct {
	ID    string
	Email string
	Role  authorization.UserRole

	FirstName     string
	LastName      string
	Unit          string
	Phone         string
	ResidenceName string

	Name        string
	Type        string
	Specialties string
}

type LoginResult struct {
	Token string
	User  UserInfo
}

type LoginUseCase struct {
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	hasher           PasswordHasher
	tokens           TokenGenerator
	logger           logger.Interface
}

func NewLoginUseCase(
	tenantRepo tenant.Repository,
	professionalRepo professional.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		tenantRepo:       tenantRepo,
		professionalRepo: professionalRepo,
		hasher:           hasher,
		tokens:           tokens,
		logger:           logger,
	}
}

// Execute authenticates against the table matching the requested role.
// Unknown account, wrong password and inactive account all collapse to
// the same invalid-credentials reply.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	role, _ := authorization.ParseUserRole(cmd.Role)

	var user UserInfo
	var passwordHash string

	switch role {
	case authorization.RoleTenant:
		t, err := uc.tenantRepo.FindByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("tenant lookup failed during login", "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if t == nil || !t.IsActive() {
			return nil, errors.NewInvalidCredentialsError()
		}
		passwordHash = t.PasswordHash()
		user = tenantInfo(t)

	case authorization.RoleProfessional:
		p, err := uc.professionalRepo.FindByEmail(ctx, cmd.Email)
		if err != nil {
			uc.logger.Errorw("professional lookup failed during login", "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if p == nil {
			return nil, errors.NewInvalidCredentialsError()
		}
		passwordHash = p.PasswordHash()
		user = professionalInfo(p)
	}

	if err := uc.hasher.Verify(cmd.Password, passwordHash); err != nil {
		uc.logger.Infow("login rejected", "email", cmd.Email, "role", cmd.Role)
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Generate(user.ID, user.Email, role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err)
		return nil, errors.NewInternalError("Erreur serveur")
	}

	uc.logger.Infow("login succeeded", "user_id", user.ID, "role", cmd.Role)

	return &LoginResult{Token: token, User: user}, nil
}

func (uc *LoginUseCase) validateCommand(cmd LoginCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("Email et mot de passe requis")
	}
	if len(cmd.Password) == 0 {
		return errors.NewValidationError("Email et mot de passe requis")
	}
	if _, ok := authorization.ParseUserRole(cmd.Role); !ok {
		return errors.NewValidationError("Rôle invalide")
	}
	return nil
}

func tenantInfo(t *tenant.Tenant) UserInfo {
	return UserInfo{
		ID:            t.ID(),
		Email:         t.Email(),
		Role:          authorization.RoleTenant,
		FirstName:     t.FirstName(),
		LastName:      t.LastName(),
		Unit:          t.Unit(),
		Phone:         t.Phone(),
		ResidenceName: t.ResidenceName(),
	}
}

func professionalInfo(p *professional.Professional) UserInfo {
	return UserInfo{
		ID:          p.ID(),
		Email:       p.Email(),
		Role:        authorization.RoleProfessional,
		Name:        p.Name(),
		Type:        p.Type().String(),
		Phone:       p.Phone(),
		Specialties: p.Specialties(),
	}
}
