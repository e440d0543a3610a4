package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

// Resources and actions used in the endpoint policy.
const (
	ResourceTickets         = "tickets"
	ResourceAssignedTickets = "assigned_tickets"
	ResourceAttachments     = "attachments"
	ResourceMessages        = "messages"
	ResourceProfile         = "profile"

	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
)

const policyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// endpoint role policy: which role may perform which action on which
// resource. Entity-level rules (ownership filters, the agency-only
// intervention rule) live in the use cases, not here.
var policies = [][3]string{
	{string(RoleTenant), ResourceTickets, ActionCreate},
	{string(RoleTenant), ResourceTickets, ActionRead},
	{string(RoleTenant), ResourceAttachments, ActionCreate},
	{string(RoleTenant), ResourceProfile, ActionRead},

	{string(RoleProfessional), ResourceAssignedTickets, ActionRead},
	{string(RoleProfessional), ResourceAssignedTickets, ActionUpdate},

	{string(RoleTenant), ResourceMessages, ActionRead},
	{string(RoleTenant), ResourceMessages, ActionCreate},
	{string(RoleProfessional), ResourceMessages, ActionRead},
	{string(RoleProfessional), ResourceMessages, ActionCreate},
}

type Enforcer struct {
	enforcer *casbin.Enforcer
}

// NewEnforcer builds the static role policy. The policy is fixed at
// startup; there is no runtime policy management surface.
func NewEnforcer() (*Enforcer, error) {
	m, err := casbinmodel.NewModelFromString(policyModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("failed to add policy %v: %w", p, err)
		}
	}

	return &Enforcer{enforcer: enforcer}, nil
}

func (e *Enforcer) Enforce(role UserRole, resource string, action string) (bool, error) {
	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}
