package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Profile_MatchesRole(t *testing.T) {
	accountID := uuid.New()
	vendorProfile := &VendorProfile{AccountID: accountID}
	customerProfile := &CustomerProfile{AccountID: accountID}

	vendor := &Account{ID: accountID, Role: RoleVendor, VendorProfile: vendorProfile}
	assert.Equal(t, vendorProfile, vendor.Profile())
	assert.True(t, vendor.HasProfile())

	customer := &Account{ID: accountID, Role: RoleCustomer, CustomerProfile: customerProfile}
	assert.Equal(t, customerProfile, customer.Profile())

	// A profile that does not match the role is never surfaced.
	mismatched := &Account{ID: accountID, Role: RoleVendor, CustomerProfile: customerProfile}
	assert.Nil(t, mismatched.Profile())
	assert.False(t, mismatched.HasProfile())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleVendor.IsValid())
	assert.True(t, RoleCustomer.IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}
