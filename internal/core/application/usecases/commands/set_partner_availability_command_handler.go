package commands

import (
	"context"

	"tracker/internal/core/ports"
)

// SetPartnerAvailabilityCommandHandler toggles partner availability.
// Orders already assigned to a partner going offline are unaffected.
type SetPartnerAvailabilityCommandHandler struct {
	partners ports.PartnerRepository
}

// NewSetPartnerAvailabilityCommandHandler creates a handler for
// availability toggles.
func NewSetPartnerAvailabilityCommandHandler(partners ports.PartnerRepository) SetPartnerAvailabilityCommandHandler {
	return SetPartnerAvailabilityCommandHandler{partners: partners}
}

// Handle persists the requested availability state.
func (h SetPartnerAvailabilityCommandHandler) Handle(ctx context.Context, command SetPartnerAvailabilityCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	p, err := h.partners.Get(ctx, command.PartnerID())
	if err != nil {
		return err
	}

	p.SetAvailability(command.Available())
	return h.partners.Update(ctx, p)
}
