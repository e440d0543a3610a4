package usecases

import (
	"context"

	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type RegisterCommand struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Unit          string
	Phone         string
	ResidenceName string
}

type RegisterResult struct {
	Token string
	User  UserInfo
}

// RegisterUseCase opens tenant accounts. Professionals are provisioned
// through the CLI, never through this endpoint.
type RegisterUseCase struct {
	tenantRepo tenant.Repository
	hasher     PasswordHasher
	tokens     TokenGenerator
	logger     logger.Interface
}

func NewRegisterUseCase(
	tenantRepo tenant.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		tenantRepo: tenantRepo,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.tenantRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("duplicate check failed during registration", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}
	if existing != nil {
		return nil, errors.NewConflictError("Un compte avec cet email existe déjà")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Erreur serveur")
	}

	newTenant, err := tenant.NewTenant(cmd.Email, hash, cmd.FirstName, cmd.LastName, cmd.Unit, cmd.Phone, cmd.ResidenceName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tenantRepo.Create(ctx, newTenant); err != nil {
		uc.logger.Errorw("failed to create tenant", "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	token, err := uc.tokens.Generate(newTenant.ID(), newTenant.Email(), authorization.RoleTenant)
	if err != nil {
		uc.logger.Errorw("failed to issue token after registration", "error", err)
		return nil, errors.NewInternalError("Erreur serveur")
	}

	uc.logger.Infow("tenant registered", "tenant_id", newTenant.ID())

	return &RegisterResult{Token: token, User: tenantInfo(newTenant)}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("Email requis")
	}
	if len(cmd.Password) == 0 {
		return errors.NewValidationError("Le mot de passe est requis")
	}
	if len(cmd.FirstName) == 0 || len(cmd.LastName) == 0 {
		return errors.NewValidationError("Nom et prénom requis")
	}
	if len(cmd.ResidenceName) == 0 {
		return errors.NewValidationError("La résidence est obligatoire")
	}
	return nil
}
