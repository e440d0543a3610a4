package usecases

import "context"

// AssignmentNotifier tells a professional about a newly assigned
// ticket. Implementations must be safe to fail: callers log and move on.
type AssignmentNotifier interface {
	SendTicketAssigned(to, professionalName, ticketTitle, category, unit string) error
}

// ImageUploader pushes image bytes to the record store's content host.
type ImageUploader interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (id, url string, err error)
}

// InvoiceStore persists an invoice document and returns its public URL.
type InvoiceStore interface {
	SaveInvoice(ticketID string, data []byte) (string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ListTenantTicketsExecutor interface {
	Execute(ctx context.Context, query ListTenantTicketsQuery) ([]TicketView, error)
}

type ListAssignedTicketsExecutor interface {
	Execute(ctx context.Context, query ListAssignedTicketsQuery) ([]TicketView, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketView, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketView, error)
}

type UploadImageExecutor interface {
	Execute(ctx context.Context, cmd UploadImageCommand) (*UploadImageResult, error)
}
