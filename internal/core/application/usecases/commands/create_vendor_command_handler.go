package commands

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// ErrEmailAlreadyInUse is returned when registering an account with an
// email another account of the same kind already uses.
var ErrEmailAlreadyInUse = errors.New("email already in use")

// CreateVendorCommandHandler registers vendor accounts.
type CreateVendorCommandHandler struct {
	vendors ports.VendorRepository
}

// NewCreateVendorCommandHandler creates a handler for vendor registration.
func NewCreateVendorCommandHandler(vendors ports.VendorRepository) CreateVendorCommandHandler {
	return CreateVendorCommandHandler{vendors: vendors}
}

// Handle registers the vendor, rejecting duplicate login emails.
func (h CreateVendorCommandHandler) Handle(ctx context.Context, command CreateVendorCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	_, err := h.vendors.GetByEmail(ctx, command.Email())
	if err == nil {
		return ErrEmailAlreadyInUse
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	vendor, err := account.NewVendor(command.VendorID(), command.Email(), command.Name(),
		command.BusinessName(), command.Address(), command.Phone())
	if err != nil {
		return err
	}

	return h.vendors.Add(ctx, vendor)
}
