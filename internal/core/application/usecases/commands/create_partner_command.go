package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand represents a request to register a new delivery
// partner. New partners start online so they are immediately eligible
// for dispatch.
type CreatePartnerCommand struct {
	partnerID   kernel.ID
	email       string
	name        string
	phone       string
	vehicleType string

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a partner registration command.
// Email and name are required; vehicle type is free-form text.
func NewCreatePartnerCommand(email, name, phone, vehicleType string) (CreatePartnerCommand, error) {
	if email == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("email")
	}
	if name == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreatePartnerCommand{
		partnerID:   kernel.NewID(),
		email:       email,
		name:        name,
		phone:       phone,
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the generated id for the new partner.
func (c CreatePartnerCommand) PartnerID() kernel.ID {
	return c.partnerID
}

// Email returns the login email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Name returns the partner name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Phone returns the contact phone.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// VehicleType returns the declared vehicle type.
func (c CreatePartnerCommand) VehicleType() string {
	return c.vehicleType
}
