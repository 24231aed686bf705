// Package models contains data models for the user service.
package models

// Role is the permission level of a user account. Exactly two roles exist;
// using a declared type instead of raw strings keeps role comparisons
// typo-proof.
type Role string

const (
	// RoleUser is the default, non-privileged role.
	RoleUser Role = "user"
	// RoleAdmin grants access to all accounts and role management.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
