package professional

import "context"

// Repository abstracts professional persistence in the record store.
type Repository interface {
	// FindByEmail matches case-insensitively and ignores surrounding
	// whitespace. Returns (nil, nil) when no professional matches.
	FindByEmail(ctx context.Context, email string) (*Professional, error)

	// GetByID returns (nil, nil) when the record does not exist.
	GetByID(ctx context.Context, id string) (*Professional, error)

	// FindFirstByType returns the first professional of the given type
	// in store enumeration order, or (nil, nil) when none exists.
	FindFirstByType(ctx context.Context, profType Type) (*Professional, error)

	// Create persists a new professional and sets its record ID.
	Create(ctx context.Context, p *Professional) error
}
