package airtable

// Schema is the immutable table/field registry for the record store
// base. Writes address fields by field ID; reads and filter formulas
// address them by field name, which is what the store returns. The
// schema is built once at startup and passed by reference.
type Schema struct {
	Tenants       TenantsTable
	Professionals ProfessionalsTable
	Tickets       TicketsTable
	Messages      MessagesTable
}

type TenantsTable struct {
	ID     string
	Fields TenantFieldIDs
}

type TenantFieldIDs struct {
	Email         string
	PasswordHash  string
	Unit          string
	Phone         string
	FirstName     string
	LastName      string
	ResidenceName string
	Status        string
}

type ProfessionalsTable struct {
	ID     string
	Fields ProfessionalFieldIDs
}

type ProfessionalFieldIDs struct {
	Email        string
	PasswordHash string
	Name         string
	Type         string
	Phone        string
	AgencyEmail  string
	Specialties  string
}

type TicketsTable struct {
	ID     string
	Fields TicketFieldIDs
}

type TicketFieldIDs struct {
	Title           string
	Description     string
	Category        string
	Status          string
	Priority        string
	TenantEmail     string
	Unit            string
	AssignedTo      string
	Professional    string
	UpdatedAt       string
	ResolvedAt      string
	ResolutionNotes string
	Images          string
	InvoiceURL      string
}

type MessagesTable struct {
	ID     string
	Fields MessageFieldIDs
}

type MessageFieldIDs struct {
	Title        string
	Body         string
	Category     string
	Tenant       string
	Professional string
}

// Field names as the store returns them and as filter formulas address
// them. These mirror the column labels of the base.
const (
	FieldEmail         = "email"
	FieldPasswordHash  = "password_hash"
	FieldUnit          = "unit"
	FieldPhone         = "phone"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldResidenceName = "residence_name"
	FieldStatus        = "status"
	FieldCreatedAt     = "created_at"

	FieldName        = "name"
	FieldType        = "type"
	FieldAgencyEmail = "agency_email"
	FieldSpecialties = "specialties"

	FieldTitle           = "title"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldPriority        = "priority"
	FieldTenantEmail     = "tenant_email"
	FieldAssignedTo      = "assigned_to"
	FieldProfessional    = "PROFESSIONALS"
	FieldUpdatedAt       = "updated_at"
	FieldResolvedAt      = "resolved_at"
	FieldResolutionNotes = "resolution_notes"
	FieldImages          = "images_urls"
	FieldInvoiceURL      = "invoice_url"

	FieldMessageTitle    = "titre"
	FieldMessageBody     = "message"
	FieldMessageCategory = "categorie"
	FieldMessageTenant   = "TENANTS"
)

// DefaultSchema returns the registry for the production base layout.
func DefaultSchema() *Schema {
	return &Schema{
		Tenants: TenantsTable{
			ID: "tbl18r4MzBthXlnth",
			Fields: TenantFieldIDs{
				Email:         "fldg4xlUQGWAMa1vq",
				PasswordHash:  "fld1BkzQo0EqKUMVM",
				Unit:          "fld9QHC92B3G3mEWn",
				Phone:         "fldV1nK2VzfncFWIa",
				FirstName:     "fldCjf3UHzuXYax8B",
				LastName:      "fldsGDRvealJ3yZdR",
				ResidenceName: "fldEKoG8PUyQLCC37",
				Status:        "fldK0XdnyBXTOkVfc",
			},
		},
		Professionals: ProfessionalsTable{
			ID: "tblIcANCLun1lb2Ap",
			Fields: ProfessionalFieldIDs{
				Email:        "fldqgHmvZ7OFLCiBb",
				PasswordHash: "fldk8Bk0F35G8I8jx",
				Name:         "fldLZ9GvZ3MvLNUyP",
				Type:         "fldNbHwBSYIaUON0b",
				Phone:        "fldRilhbZ3K92MnN8",
				AgencyEmail:  "fldVubvDazWwArvo9",
				Specialties:  "fldNNWbU6lWIfx4Gt",
			},
		},
		Tickets: TicketsTable{
			ID: "tbl2qQrpJc4PC9yfk",
			Fields: TicketFieldIDs{
				Title:           "fld51ebPXV9129Tof",
				Description:     "fldSs15cz93JSy6zO",
				Category:        "fldx8DUYFYylqMyq1",
				Status:          "fldT3OYmpscavHWgC",
				Priority:        "fldx5UszT8duxQZyY",
				TenantEmail:     "fldZGRcdiXnoNS5OL",
				Unit:            "fldRj1kcmJSu4nQQ2",
				AssignedTo:      "fld3bfcdn71PUNPZI",
				Professional:    "fldhT2oXcQq8WB4nE",
				UpdatedAt:       "fldwa2gEGI645x9FC",
				ResolvedAt:      "flddYiLBPnCYtBClV",
				ResolutionNotes: "fldOWkLenvlefCm7Q",
				Images:          "flduOSxLcMx3dXktM",
				InvoiceURL:      "fldpQ7nKdXw2ZaUVs",
			},
		},
		Messages: MessagesTable{
			ID: "tblWvA5XqJmR8o3Fz",
			Fields: MessageFieldIDs{
				Title:        "fldTm2xKpV7eJqW4u",
				Body:         "fldBn8rYwQ3sLcD9g",
				Category:     "fldCv5tHzM6aXfE2j",
				Tenant:       "fldLk9mPbS4dRhG7w",
				Professional: "fldPw3qZcN8fTjK5v",
			},
		},
	}
}
