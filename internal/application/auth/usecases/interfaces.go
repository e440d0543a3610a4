package usecases

import (
	"context"

	"residconnect/internal/shared/authorization"
)

// PasswordHasher hashes and checks credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenGenerator issues signed bearer tokens.
type TokenGenerator interface {
	Generate(userID, email string, role authorization.UserRole) (string, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*UserInfo, error)
}
