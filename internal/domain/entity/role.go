package entity

import "fmt"

// Role is the closed set of account roles. The numeric values are part of
// the persisted data model and of the token claims, so they must not change.
type Role int

const (
	// RoleAdmin is never persisted; the admin identity comes from
	// out-of-band configuration and always carries account ID 0.
	RoleAdmin Role = 0
	// RoleStaff can manage categories and author articles.
	RoleStaff Role = 1
	// RoleLecturer can authenticate but only reads published content.
	RoleLecturer Role = 2
)

// ParseRole converts a numeric role claim into a Role.
// Unknown values are rejected at the boundary rather than carried around.
func ParseRole(v int) (Role, error) {
	switch Role(v) {
	case RoleAdmin, RoleStaff, RoleLecturer:
		return Role(v), nil
	default:
		return 0, fmt.Errorf("%w: unknown role %d", ErrInvalidInput, v)
	}
}

// Name returns the display name used in token claims and responses.
func (r Role) Name() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleStaff:
		return "Staff"
	case RoleLecturer:
		return "Lecturer"
	default:
		return "Unknown"
	}
}

// Assignable reports whether the role may be assigned to a stored account.
// Admin accounts cannot be created through the account manager.
func (r Role) Assignable() bool {
	return r == RoleStaff || r == RoleLecturer
}
