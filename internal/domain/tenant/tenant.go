package tenant

import (
	"fmt"
	"time"

	"residconnect/internal/shared/utils"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// Tenant is a resident account. The record ID is assigned by the record
// store on creation.
type Tenant struct {
	id            string
	email         string
	passwordHash  string
	firstName     string
	lastName      string
	unit          string
	phone         string
	residenceName string
	status        Status
	createdAt     time.Time
}

func NewTenant(email, passwordHash, firstName, lastName, unit, phone, residenceName string) (*Tenant, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(firstName) == 0 {
		return nil, fmt.Errorf("first name is required")
	}
	if len(lastName) == 0 {
		return nil, fmt.Errorf("last name is required")
	}
	if len(residenceName) == 0 {
		return nil, fmt.Errorf("residence name is required")
	}

	return &Tenant{
		email:         utils.NormalizeEmail(email),
		passwordHash:  passwordHash,
		firstName:     firstName,
		lastName:      lastName,
		unit:          unit,
		phone:         phone,
		residenceName: residenceName,
		status:        StatusActive,
	}, nil
}

func ReconstructTenant(
	id string,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	unit string,
	phone string,
	residenceName string,
	status Status,
	createdAt time.Time,
) (*Tenant, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("tenant ID cannot be empty")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !status.IsValid() {
		status = StatusActive
	}

	return &Tenant{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		firstName:     firstName,
		lastName:      lastName,
		unit:          unit,
		phone:         phone,
		residenceName: residenceName,
		status:        status,
		createdAt:     createdAt,
	}, nil
}

func (t *Tenant) ID() string {
	return t.id
}

func (t *Tenant) Email() string {
	return t.email
}

func (t *Tenant) PasswordHash() string {
	return t.passwordHash
}

func (t *Tenant) FirstName() string {
	return t.firstName
}

func (t *Tenant) LastName() string {
	return t.lastName
}

func (t *Tenant) Unit() string {
	return t.unit
}

func (t *Tenant) Phone() string {
	return t.phone
}

func (t *Tenant) ResidenceName() string {
	return t.residenceName
}

func (t *Tenant) Status() Status {
	return t.status
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) IsActive() bool {
	return t.status == StatusActive
}

func (t *Tenant) SetID(id string) error {
	if t.id != "" {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == "" {
		return fmt.Errorf("tenant ID cannot be empty")
	}
	t.id = id
	return nil
}
