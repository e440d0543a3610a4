package usecases

import (
	"time"

	"residconnect/internal/domain/ticket"
)

// TicketView is the read model returned by ticket queries and updates.
type TicketView struct {
	ID              string
	Title           string
	Description     string
	Category        string
	Status          string
	Priority        string
	TenantEmail     string
	Unit            string
	AssignedTo      string
	ResolutionNotes string
	InvoiceURL      string
	ImageIDs        []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ResolvedAt      *time.Time
}

func toTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Category:        t.Category().String(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		TenantEmail:     t.TenantEmail(),
		Unit:            t.Unit(),
		AssignedTo:      t.AssignedTo(),
		ResolutionNotes: t.ResolutionNotes(),
		InvoiceURL:      t.InvoiceURL(),
		ImageIDs:        t.ImageIDs(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ResolvedAt:      t.ResolvedAt(),
	}
}

func toTicketViews(tickets []*ticket.Ticket) []TicketView {
	views := make([]TicketView, len(tickets))
	for i, t := range tickets {
		views[i] = toTicketView(t)
	}
	return views
}
