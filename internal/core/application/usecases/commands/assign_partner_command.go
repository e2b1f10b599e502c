package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand represents a vendor's explicit choice of delivery
// partner for an order. Availability is not checked here: the vendor
// dashboard lists available partners, but a deliberate pick of an
// offline partner is honored.
type AssignPartnerCommand struct {
	orderID   kernel.ID
	partnerID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignPartnerCommand creates an assignment command for the given
// order and partner ids.
func NewAssignPartnerCommand(orderID, partnerID kernel.ID) (AssignPartnerCommand, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate()); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignPartnerCommand) OrderID() kernel.ID {
	return c.orderID
}

// PartnerID returns the chosen delivery partner.
func (c AssignPartnerCommand) PartnerID() kernel.ID {
	return c.partnerID
}
