package domain

// Role is a workspace scoped privilege level.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Roles lists every role in descending privilege.
var Roles = []Role{RoleOwner, RoleAdmin, RoleMember}

// Managers are the roles allowed to administer a workspace.
var Managers = []Role{RoleOwner, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Assignable reports whether r can be granted through an invite or a role
// change. Ownership is fixed at workspace creation.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleMember
}

// IsManager reports whether r has unconditional access to every board.
func (r Role) IsManager() bool {
	return r == RoleOwner || r == RoleAdmin
}

// In reports whether r is one of allowed. An empty set allows every role.
func (r Role) In(allowed ...Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}
