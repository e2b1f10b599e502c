package kernel

import (
	"fmt"

	"tracker/internal/pkg/errs"
)

// Role tags an account with its place in the delivery workflow.
// Role is immutable once set on an entity.
type Role string

const (
	// RoleVendor marks accounts that create and own orders.
	RoleVendor Role = "vendor"
	// RoleDelivery marks accounts that carry orders and push location samples.
	RoleDelivery Role = "delivery"
	// RoleCustomer marks accounts that place and track orders.
	RoleCustomer Role = "customer"
)

// Validate rejects any value outside the three known roles.
func (r Role) Validate() error {
	switch r {
	case RoleVendor, RoleDelivery, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
