package message

import (
	"fmt"
	"time"

	vo "residconnect/internal/domain/message/valueobjects"
)

// Message is a broadcast post on the shared residence feed. Exactly one
// of tenantID and professionalID is set; the author link is immutable.
type Message struct {
	id             string
	title          string
	body           string
	category       vo.Category
	tenantID       string
	professionalID string
	createdAt      time.Time
}

func NewMessage(title, body string, category vo.Category, tenantID, professionalID string) (*Message, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("body is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if tenantID == "" && professionalID == "" {
		return nil, fmt.Errorf("message requires an author link")
	}
	if tenantID != "" && professionalID != "" {
		return nil, fmt.Errorf("message cannot be linked to both a tenant and a professional")
	}

	return &Message{
		title:          title,
		body:           body,
		category:       category,
		tenantID:       tenantID,
		professionalID: professionalID,
		createdAt:      time.Now(),
	}, nil
}

func ReconstructMessage(
	id string,
	title string,
	body string,
	category vo.Category,
	tenantID string,
	professionalID string,
	createdAt time.Time,
) (*Message, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("message ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &Message{
		id:             id,
		title:          title,
		body:           body,
		category:       category,
		tenantID:       tenantID,
		professionalID: professionalID,
		createdAt:      createdAt,
	}, nil
}

func (m *Message) ID() string {
	return m.id
}

func (m *Message) Title() string {
	return m.title
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) Category() vo.Category {
	return m.category
}

func (m *Message) TenantID() string {
	return m.tenantID
}

func (m *Message) ProfessionalID() string {
	return m.professionalID
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) AuthoredByTenant() bool {
	return m.tenantID != ""
}

func (m *Message) SetID(id string) error {
	if m.id != "" {
		return fmt.Errorf("message ID is already set")
	}
	if id == "" {
		return fmt.Errorf("message ID cannot be empty")
	}
	m.id = id
	return nil
}
