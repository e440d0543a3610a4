package professional

import (
	"fmt"
	"time"

	"residconnect/internal/shared/utils"
)

// Type identifies the trade of a professional. Tickets are routed to a
// professional whose type matches the ticket category.
type Type string

const (
	TypePlumber     Type = "plumber"
	TypeElectrician Type = "electrician"
	TypeConcierge   Type = "concierge"
	TypeAgency      Type = "agency"
)

var validTypes = map[Type]bool{
	TypePlumber:     true,
	TypeElectrician: true,
	TypeConcierge:   true,
	TypeAgency:      true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func (t Type) IsAgency() bool {
	return t == TypeAgency
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid professional type: %s", s)
	}
	return t, nil
}

// Professional is a maintenance or agency account. Professionals are
// provisioned out of band (CLI); there is no self-registration endpoint.
type Professional struct {
	id           string
	email        string
	passwordHash string
	name         string
	profType     Type
	phone        string
	agencyEmail  string
	specialties  string
	createdAt    time.Time
}

func NewProfessional(email, passwordHash, name string, profType Type, phone, agencyEmail, specialties string) (*Professional, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !profType.IsValid() {
		return nil, fmt.Errorf("invalid professional type: %s", profType)
	}

	return &Professional{
		email:        utils.NormalizeEmail(email),
		passwordHash: passwordHash,
		name:         name,
		profType:     profType,
		phone:        phone,
		agencyEmail:  agencyEmail,
		specialties:  specialties,
	}, nil
}

func ReconstructProfessional(
	id string,
	email string,
	passwordHash string,
	name string,
	profType Type,
	phone string,
	agencyEmail string,
	specialties string,
	createdAt time.Time,
) (*Professional, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("professional ID cannot be empty")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !profType.IsValid() {
		return nil, fmt.Errorf("invalid professional type: %s", profType)
	}

	return &Professional{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		profType:     profType,
		phone:        phone,
		agencyEmail:  agencyEmail,
		specialties:  specialties,
		createdAt:    createdAt,
	}, nil
}

func (p *Professional) ID() string {
	return p.id
}

func (p *Professional) Email() string {
	return p.email
}

func (p *Professional) PasswordHash() string {
	return p.passwordHash
}

func (p *Professional) Name() string {
	return p.name
}

func (p *Professional) Type() Type {
	return p.profType
}

func (p *Professional) Phone() string {
	return p.phone
}

func (p *Professional) AgencyEmail() string {
	return p.agencyEmail
}

func (p *Professional) Specialties() string {
	return p.specialties
}

func (p *Professional) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Professional) SetID(id string) error {
	if p.id != "" {
		return fmt.Errorf("professional ID is already set")
	}
	if id == "" {
		return fmt.Errorf("professional ID cannot be empty")
	}
	p.id = id
	return nil
}
