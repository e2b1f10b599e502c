package commands

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// CreatePartnerCommandHandler registers delivery partner accounts.
type CreatePartnerCommandHandler struct {
	partners ports.PartnerRepository
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
func NewCreatePartnerCommandHandler(partners ports.PartnerRepository) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{partners: partners}
}

// Handle registers the partner, rejecting duplicate login emails.
func (h CreatePartnerCommandHandler) Handle(ctx context.Context, command CreatePartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := h.partners.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyInUse
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	p, err := partner.NewDeliveryPartner(command.PartnerID(), command.Email(),
		command.Name(), command.Phone(), command.VehicleType())
	if err != nil {
		return err
	}

	return h.partners.Add(ctx, p)
}
