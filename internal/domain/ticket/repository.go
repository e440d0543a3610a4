package ticket

import "context"

// Repository abstracts ticket persistence in the record store.
type Repository interface {
	// ListByTenantEmail returns the tenant's tickets, newest first.
	// Email matching is case-insensitive and whitespace-trimmed.
	ListByTenantEmail(ctx context.Context, email string) ([]*Ticket, error)

	// ListByAssignee returns tickets whose assignee email matches,
	// newest first.
	ListByAssignee(ctx context.Context, email string) ([]*Ticket, error)

	// GetByID returns (nil, nil) when the record does not exist.
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// Create persists a new ticket and sets its record ID.
	Create(ctx context.Context, t *Ticket) error

	// Update writes the ticket's mutable fields back to the store.
	Update(ctx context.Context, t *Ticket) error
}
