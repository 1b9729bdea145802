// Package entity contains the core business objects of the project.
package entity

import "github.com/pkg/errors"

// Role is the closed set of authorization levels an account can hold.
type Role string

const (
	// RoleUser is assigned to every self-registered account.
	RoleUser Role = "User"
	// RoleAdmin may list and delete any account. Granted out of band only.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageAccounts reports whether the role may list or delete other accounts.
func (r Role) CanManageAccounts() bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser:
		return false
	default:
		return false
	}
}

// ParseRole converts a stored or token-carried role string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Errorf("unknown role %q", s)
	}

	return role, nil
}
