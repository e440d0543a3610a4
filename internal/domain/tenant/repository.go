package tenant

import "context"

// Repository abstracts tenant persistence in the record store.
type Repository interface {
	// FindByEmail matches case-insensitively and ignores surrounding
	// whitespace. Returns (nil, nil) when no tenant matches.
	FindByEmail(ctx context.Context, email string) (*Tenant, error)

	// GetByID returns (nil, nil) when the record does not exist.
	GetByID(ctx context.Context, id string) (*Tenant, error)

	// Create persists a new tenant and sets its record ID.
	Create(ctx context.Context, t *Tenant) error
}
