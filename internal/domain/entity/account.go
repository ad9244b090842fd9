// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the identity record of the system. The mobile number is the
// unique login key. Exactly one of VendorProfile/CustomerProfile is set,
// matching Role, and both are resolved once at load time.
type Account struct {
	ID              uuid.UUID        // The unique identifier for the account.
	Mobile          string           // Unique mobile number used as the login identifier.
	Email           string           // Optional contact email.
	PasswordHash    string           // bcrypt-hashed credential; never exposed outward.
	Role            Role             // Discriminates which profile pointer is populated.
	IsActive        bool             // Deactivated accounts cannot sign in or resume a session.
	VendorProfile   *VendorProfile   // Set when Role is RoleVendor, nil otherwise.
	CustomerProfile *CustomerProfile // Set when Role is RoleCustomer, nil otherwise.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Profile returns the role-matching profile as an untyped value for
// serialization, or nil when the profile has not been loaded.
func (a *Account) Profile() any {
	switch a.Role {
	case RoleVendor:
		if a.VendorProfile != nil {
			return a.VendorProfile
		}
	case RoleCustomer:
		if a.CustomerProfile != nil {
			return a.CustomerProfile
		}
	}

	return nil
}

// HasProfile reports whether the role-matching profile is loaded.
func (a *Account) HasProfile() bool {
	return a.Profile() != nil
}
