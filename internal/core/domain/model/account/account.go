// Package account holds the vendor and customer entities. Both are plain
// identity records: the interesting behavior of the domain lives on
// orders and delivery partners.
package account

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	// ErrVendorIsNotConstructed is returned when using an improperly initialized Vendor.
	ErrVendorIsNotConstructed = errors.New("Vendor must be created via NewVendor constructor")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Vendor is a business account that creates and owns orders.
type Vendor struct {
	id           kernel.ID
	email        string
	name         string
	businessName string
	address      string
	phone        string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewVendor creates a vendor account. Email, display name and business
// name are required.
func NewVendor(id kernel.ID, email, name, businessName, address, phone string) (*Vendor, error) {
	if err := errors.Join(
		id.Validate(),
		requireField("email", email),
		requireField("name", name),
		requireField("businessName", businessName),
	); err != nil {
		return nil, err
	}

	return &Vendor{
		id:           id,
		email:        email,
		name:         name,
		businessName: businessName,
		address:      address,
		phone:        phone,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreVendor reconstructs a vendor from stored state.
func RestoreVendor(id kernel.ID, email, name, businessName, address, phone string, createdAt time.Time) (*Vendor, error) {
	restored, err := NewVendor(id, email, name, businessName, address, phone)
	if err != nil {
		return nil, err
	}
	restored.createdAt = createdAt
	return restored, nil
}

// Validate ensures the vendor was built through a constructor.
func (v *Vendor) Validate() error {
	if v == nil {
		return ErrVendorIsNotConstructed
	}
	return v.guard.Validate(ErrVendorIsNotConstructed)
}

// ID returns the vendor identifier.
func (v *Vendor) ID() kernel.ID { return v.id }

// Email returns the login email.
func (v *Vendor) Email() string { return v.email }

// Name returns the display name.
func (v *Vendor) Name() string { return v.name }

// Role returns the immutable role tag of vendors.
func (v *Vendor) Role() kernel.Role { return kernel.RoleVendor }

// BusinessName returns the business name shown on dashboards.
func (v *Vendor) BusinessName() string { return v.businessName }

// Address returns the pickup address of the business.
func (v *Vendor) Address() string { return v.address }

// Phone returns the contact phone.
func (v *Vendor) Phone() string { return v.phone }

// CreatedAt returns the registration timestamp stamped by the store.
func (v *Vendor) CreatedAt() time.Time { return v.createdAt }

// Touch stamps the creation timestamp on first persistence.
func (v *Vendor) Touch(now time.Time) {
	if v.createdAt.IsZero() {
		v.createdAt = now
	}
}

// Clone returns an independent copy so store callers hold snapshots.
func (v *Vendor) Clone() *Vendor {
	clone := *v
	return &clone
}

// Customer is an end-user account that places and tracks orders.
type Customer struct {
	id        kernel.ID
	email     string
	name      string
	phone     string
	address   string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer account. Email and display name are required.
func NewCustomer(id kernel.ID, email, name, phone, address string) (*Customer, error) {
	if err := errors.Join(
		id.Validate(),
		requireField("email", email),
		requireField("name", name),
	); err != nil {
		return nil, err
	}

	return &Customer{
		id:      id,
		email:   email,
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a customer from stored state.
func RestoreCustomer(id kernel.ID, email, name, phone, address string, createdAt time.Time) (*Customer, error) {
	restored, err := NewCustomer(id, email, name, phone, address)
	if err != nil {
		return nil, err
	}
	restored.createdAt = createdAt
	return restored, nil
}

// Validate ensures the customer was built through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.ID { return c.id }

// Email returns the login email.
func (c *Customer) Email() string { return c.email }

// Name returns the display name.
func (c *Customer) Name() string { return c.name }

// Role returns the immutable role tag of customers.
func (c *Customer) Role() kernel.Role { return kernel.RoleCustomer }

// Phone returns the contact phone.
func (c *Customer) Phone() string { return c.phone }

// Address returns the default delivery address.
func (c *Customer) Address() string { return c.address }

// CreatedAt returns the registration timestamp stamped by the store.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// Touch stamps the creation timestamp on first persistence.
func (c *Customer) Touch(now time.Time) {
	if c.createdAt.IsZero() {
		c.createdAt = now
	}
}

// Clone returns an independent copy so store callers hold snapshots.
func (c *Customer) Clone() *Customer {
	clone := *c
	return &clone
}

func requireField(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
