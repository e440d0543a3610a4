package ticket

import (
	"fmt"
	"time"

	vo "residconnect/internal/domain/ticket/valueobjects"
)

// Ticket is a maintenance request filed by a tenant. It carries both a
// professional record link (authoritative) and the assignee's email
// (assignedTo), which the professional work-queue query filters on.
type Ticket struct {
	id              string
	title           string
	description     string
	category        vo.Category
	status          vo.TicketStatus
	priority        vo.Priority
	tenantEmail     string
	unit            string
	professionalID  string
	assignedTo      string
	resolutionNotes string
	imageIDs        []string
	invoiceURL      string
	createdAt       time.Time
	updatedAt       time.Time
	resolvedAt      *time.Time
}

func NewTicket(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	tenantEmail string,
	unit string,
	imageIDs []string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(tenantEmail) == 0 {
		return nil, fmt.Errorf("tenant email is required")
	}

	if imageIDs == nil {
		imageIDs = []string{}
	}

	now := time.Now()

	return &Ticket{
		title:       title,
		description: description,
		category:    category,
		status:      vo.StatusOpen,
		priority:    priority,
		tenantEmail: tenantEmail,
		unit:        unit,
		imageIDs:    imageIDs,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id string,
	title string,
	description string,
	category vo.Category,
	status vo.TicketStatus,
	priority vo.Priority,
	tenantEmail string,
	unit string,
	professionalID string,
	assignedTo string,
	resolutionNotes string,
	imageIDs []string,
	invoiceURL string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if imageIDs == nil {
		imageIDs = []string{}
	}

	return &Ticket{
		id:              id,
		title:           title,
		description:     description,
		category:        category,
		status:          status,
		priority:        priority,
		tenantEmail:     tenantEmail,
		unit:            unit,
		professionalID:  professionalID,
		assignedTo:      assignedTo,
		resolutionNotes: resolutionNotes,
		imageIDs:        imageIDs,
		invoiceURL:      invoiceURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		resolvedAt:      resolvedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) TenantEmail() string {
	return t.tenantEmail
}

func (t *Ticket) Unit() string {
	return t.unit
}

func (t *Ticket) ProfessionalID() string {
	return t.professionalID
}

func (t *Ticket) AssignedTo() string {
	return t.assignedTo
}

func (t *Ticket) ResolutionNotes() string {
	return t.resolutionNotes
}

func (t *Ticket) ImageIDs() []string {
	idsCopy := make([]string, len(t.imageIDs))
	copy(idsCopy, t.imageIDs)
	return idsCopy
}

func (t *Ticket) InvoiceURL() string {
	return t.invoiceURL
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) IsAssigned() bool {
	return t.professionalID != ""
}

func (t *Ticket) SetID(id string) error {
	if t.id != "" {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == "" {
		return fmt.Errorf("ticket ID cannot be empty")
	}
	t.id = id
	return nil
}

// Assign links a professional to the ticket. On a freshly created open
// ticket this moves the status to assigned; the status invariant is
// that a ticket is "assigned" iff a professional link is present at
// creation.
func (t *Ticket) Assign(professionalID, professionalEmail string) error {
	if professionalID == "" {
		return fmt.Errorf("professional ID cannot be empty")
	}

	t.professionalID = professionalID
	t.assignedTo = professionalEmail
	t.updatedAt = time.Now()

	if t.status.IsOpen() {
		t.status = vo.StatusAssigned
	}

	return nil
}

// Reassign points the ticket at a different handler email. When the
// email resolves to a known professional the record link follows; a
// free-text email alone clears the link (legacy path).
func (t *Ticket) Reassign(professionalEmail, professionalID string) {
	t.assignedTo = professionalEmail
	t.professionalID = professionalID
	t.updatedAt = time.Now()
}

// ChangeStatus enforces the forward-only lifecycle. Setting the current
// status again is a no-op.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	if newStatus.IsResolved() && t.resolvedAt == nil {
		now := time.Now()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) SetResolutionNotes(notes string) {
	t.resolutionNotes = notes
	t.updatedAt = time.Now()
}

func (t *Ticket) AttachInvoice(url string) error {
	if url == "" {
		return fmt.Errorf("invoice URL cannot be empty")
	}
	t.invoiceURL = url
	t.updatedAt = time.Now()
	return nil
}
