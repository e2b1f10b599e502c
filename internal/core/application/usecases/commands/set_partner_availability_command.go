package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrSetPartnerAvailabilityCommandIsNotConstructed = errors.New(
	"SetPartnerAvailabilityCommand must be created via NewSetPartnerAvailabilityCommand constructor",
)

// SetPartnerAvailabilityCommand toggles whether a delivery partner
// accepts new assignments.
type SetPartnerAvailabilityCommand struct {
	partnerID kernel.ID
	available bool

	guard guard.ConstructorGuard
}

// NewSetPartnerAvailabilityCommand creates an availability toggle command.
func NewSetPartnerAvailabilityCommand(partnerID kernel.ID, available bool) (SetPartnerAvailabilityCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return SetPartnerAvailabilityCommand{}, err
	}

	return SetPartnerAvailabilityCommand{
		partnerID: partnerID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPartnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetPartnerAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the partner to toggle.
func (c SetPartnerAvailabilityCommand) PartnerID() kernel.ID {
	return c.partnerID
}

// Available returns the requested availability state.
func (c SetPartnerAvailabilityCommand) Available() bool {
	return c.available
}
