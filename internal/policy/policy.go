// Package policy is the single source of authorization truth for the leave
// workflow. Every rule here is a pure function over roles; handlers and
// services never re-derive permission logic on their own.
package policy

type Role string

const (
	RoleMember  Role = "MEMBER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMember, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

// RequiredApproverRole returns the role tier that must decide a leave
// submitted by requesterRole. Admins cannot submit leave at all, so the
// second return value reports whether an approver tier exists.
func RequiredApproverRole(requesterRole Role) (Role, bool) {
	switch requesterRole {
	case RoleMember:
		return RoleManager, true
	case RoleManager:
		return RoleAdmin, true
	}
	return "", false
}

func CanSubmitLeave(role Role) bool {
	return role == RoleMember || role == RoleManager
}

// CanViewApprovalQueue reports whether role may see a queue item targeted at
// approverRequiredRole. Managers see only manager-targeted items; admins see
// everything.
func CanViewApprovalQueue(role, approverRequiredRole Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleManager:
		return approverRequiredRole == RoleManager
	}
	return false
}

// CanDecide reports whether role may approve or reject an item targeted at
// approverRequiredRole. The hierarchy is deliberately asymmetric: an admin
// may decide manager-targeted items, a manager may never decide
// admin-targeted ones.
func CanDecide(role, approverRequiredRole Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleManager:
		return approverRequiredRole == RoleManager
	}
	return false
}

// IsApprover reports whether the role may access the approval surface at all.
func IsApprover(role Role) bool {
	return role == RoleManager || role == RoleAdmin
}
