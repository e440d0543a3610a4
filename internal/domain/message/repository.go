package message

import (
	"context"

	vo "residconnect/internal/domain/message/valueobjects"
)

// Repository abstracts message persistence in the record store.
type Repository interface {
	// ListAll returns every message, newest first.
	ListAll(ctx context.Context) ([]*Message, error)

	// ListByCategory returns messages of one category, newest first.
	ListByCategory(ctx context.Context, category vo.Category) ([]*Message, error)

	// Create persists a new message and sets its record ID.
	Create(ctx context.Context, m *Message) error
}
