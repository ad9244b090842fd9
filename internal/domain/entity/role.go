// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the marketplace.
type Role string

const (
	// RoleVendor indicates a small-business vendor account.
	RoleVendor Role = "vendor"
	// RoleCustomer indicates a customer account.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleVendor, RoleCustomer:
		return true
	default:
		return false
	}
}
