package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrCreateVendorCommandIsNotConstructed = errors.New(
	"CreateVendorCommand must be created via NewCreateVendorCommand constructor",
)

// CreateVendorCommand represents a request to register a new vendor
// account. The vendor id is generated at construction so callers can
// reference the new account immediately after handling.
type CreateVendorCommand struct {
	vendorID     kernel.ID
	email        string
	name         string
	businessName string
	address      string
	phone        string

	guard guard.ConstructorGuard
}

// NewCreateVendorCommand creates a vendor registration command.
// Email, name and business name are required.
func NewCreateVendorCommand(email, name, businessName, address, phone string) (CreateVendorCommand, error) {
	command := CreateVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setEmail(email),
		command.setName(name),
		command.setBusinessName(businessName),
	); err != nil {
		return CreateVendorCommand{}, err
	}

	command.vendorID = kernel.NewID()
	command.address = address
	command.phone = phone
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVendorCommand) Validate() error {
	return c.guard.Validate(ErrCreateVendorCommandIsNotConstructed)
}

// VendorID returns the generated id for the new vendor.
func (c CreateVendorCommand) VendorID() kernel.ID {
	return c.vendorID
}

// Email returns the login email.
func (c CreateVendorCommand) Email() string {
	return c.email
}

// Name returns the contact name.
func (c CreateVendorCommand) Name() string {
	return c.name
}

// BusinessName returns the storefront name shown to customers.
func (c CreateVendorCommand) BusinessName() string {
	return c.businessName
}

// Address returns the pickup address.
func (c CreateVendorCommand) Address() string {
	return c.address
}

// Phone returns the contact phone.
func (c CreateVendorCommand) Phone() string {
	return c.phone
}

func (c *CreateVendorCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateVendorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateVendorCommand) setBusinessName(businessName string) error {
	if businessName == "" {
		return errs.NewValueIsRequiredError("businessName")
	}
	c.businessName = businessName
	return nil
}
