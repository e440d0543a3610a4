package ticket

import (
	"time"

	"residconnect/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=5000"`
	Category    string   `json:"category" binding:"required"`
	Priority    string   `json:"priority"`
	Images      []string `json:"images,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(tenantEmail string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		TenantEmail: tenantEmail,
		ImageIDs:    r.Images,
	}
}

type UpdateTicketRequest struct {
	Status          *string `json:"status"`
	ResolutionNotes *string `json:"resolution_notes"`
	AssignedTo      *string `json:"assigned_to"`
}

type TicketDTO struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	TenantEmail     string     `json:"tenant_email"`
	Unit            string     `json:"unit,omitempty"`
	AssignedTo      string     `json:"assigned_to,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	InvoiceURL      string     `json:"invoice_url,omitempty"`
	Images          []string   `json:"images,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

type UploadImageResponse struct {
	AttachmentID string `json:"attachmentId"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
}

func toTicketDTO(view usecases.TicketView) TicketDTO {
	return TicketDTO{
		ID:              view.ID,
		Title:           view.Title,
		Description:     view.Description,
		Category:        view.Category,
		Status:          view.Status,
		Priority:        view.Priority,
		TenantEmail:     view.TenantEmail,
		Unit:            view.Unit,
		AssignedTo:      view.AssignedTo,
		ResolutionNotes: view.ResolutionNotes,
		InvoiceURL:      view.InvoiceURL,
		Images:          view.ImageIDs,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
		ResolvedAt:      view.ResolvedAt,
	}
}

func toTicketDTOs(views []usecases.TicketView) []TicketDTO {
	dtos := make([]TicketDTO, len(views))
	for i, v := range views {
		dtos[i] = toTicketDTO(v)
	}
	return dtos
}
