package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type CreateProfessionalCommand struct {
	Email       string
	Password    string
	Name        string
	Type        string
	Phone       string
	AgencyEmail string
	Specialties string
}

type CreateProfessionalResult struct {
	ID    string
	Email string
	Name  string
	Type  string
}

// PasswordHasher hashes provisioning passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type CreateProfessionalExecutor interface {
	Execute(ctx context.Context, cmd CreateProfessionalCommand) (*CreateProfessionalResult, error)
}

// CreateProfessionalUseCase provisions professional accounts. Only the
// operator CLI reaches this; there is no HTTP surface for it.
type CreateProfessionalUseCase struct {
	professionalRepo professional.Repository
	hasher           PasswordHasher
	logger           logger.Interface
}

func NewCreateProfessionalUseCase(
	professionalRepo professional.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateProfessionalUseCase {
	return &CreateProfessionalUseCase{
		professionalRepo: professionalRepo,
		hasher:           hasher,
		logger:           logger,
	}
}

func (uc *CreateProfessionalUseCase) Execute(ctx context.Context, cmd CreateProfessionalCommand) (*CreateProfessionalResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.professionalRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, errors.NewUpstreamError("failed to check existing professional", err.Error())
	}
	if existing != nil {
		return nil, errors.NewConflictError("a professional with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	profType, err := professional.NewType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	p, err := professional.NewProfessional(cmd.Email, hash, cmd.Name, profType, cmd.Phone, cmd.AgencyEmail, cmd.Specialties)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.professionalRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create professional", "error", err)
		return nil, errors.NewUpstreamError("failed to create professional", err.Error())
	}

	uc.logger.Infow("professional provisioned", "professional_id", p.ID(), "type", p.Type().String())

	return &CreateProfessionalResult{
		ID:    p.ID(),
		Email: p.Email(),
		Name:  p.Name(),
		Type:  p.Type().String(),
	}, nil
}

func (uc *CreateProfessionalUseCase) validateCommand(cmd CreateProfessionalCommand) error {
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if !professional.Type(cmd.Type).IsValid() {
		return errors.NewValidationError("invalid professional type (plumber, electrician, concierge, agency)")
	}
	return nil
}
