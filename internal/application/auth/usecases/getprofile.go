package usecases

import (
	"context"

	"residconnect/internal/domain/professional"
	"residconnect/internal/domain/tenant"
	"residconnect/internal/shared/authorization"
	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID string
	Role   authorization.UserRole
}

// GetProfileUseCase loads the authenticated account from the token's
// user ID, so a profile stays readable even if the email changes.
type GetProfileUseCase struct {
	tenantRepo       tenant.Repository
	professionalRepo professional.Repository
	logger           logger.Interface
}

func NewGetProfileUseCase(
	tenantRepo tenant.Repository,
	professionalRepo professional.Repository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		tenantRepo:       tenantRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*UserInfo, error) {
	if query.UserID == "" || !query.Role.IsValid() {
		return nil, errors.NewValidationError("identifiant utilisateur manquant")
	}

	switch query.Role {
	case authorization.RoleTenant:
		t, err := uc.tenantRepo.GetByID(ctx, query.UserID)
		if err != nil {
			uc.logger.Errorw("tenant profile lookup failed", "tenant_id", query.UserID, "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if t == nil {
			return nil, errors.NewNotFoundError("Résident non trouvé")
		}
		info := tenantInfo(t)
		return &info, nil

	default:
		p, err := uc.professionalRepo.GetByID(ctx, query.UserID)
		if err != nil {
			uc.logger.Errorw("professional profile lookup failed", "professional_id", query.UserID, "error", err)
			return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
		}
		if p == nil {
			return nil, errors.NewNotFoundError("Professionnel non trouvé")
		}
		info := professionalInfo(p)
		return &info, nil
	}
}
