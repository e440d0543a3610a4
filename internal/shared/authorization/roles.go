package authorization

type UserRole string

const (
	RoleTenant       UserRole = "tenant"
	RoleProfessional UserRole = "professional"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsTenant() bool {
	return r == RoleTenant
}

func (r UserRole) IsProfessional() bool {
	return r == RoleProfessional
}

func (r UserRole) IsValid() bool {
	return r == RoleTenant || r == RoleProfessional
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
