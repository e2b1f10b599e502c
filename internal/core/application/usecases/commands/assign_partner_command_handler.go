package commands

import (
	"context"

	"tracker/internal/core/ports"
)

// AssignPartnerCommandHandler assigns a chosen delivery partner to an
// order and announces the assignment.
type AssignPartnerCommandHandler struct {
	orders    ports.OrderRepository
	partners  ports.PartnerRepository
	publisher ports.EventPublisher
}

// NewAssignPartnerCommandHandler creates a handler for explicit
// partner assignment.
func NewAssignPartnerCommandHandler(
	orders ports.OrderRepository,
	partners ports.PartnerRepository,
	publisher ports.EventPublisher,
) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		orders:    orders,
		partners:  partners,
		publisher: publisher,
	}
}

// Handle assigns the partner. Both ids must resolve; the order must be
// in a status that accepts an assignment, reassignment of an already
// assigned order is allowed.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, command AssignPartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	p, err := h.partners.Get(ctx, command.PartnerID())
	if err != nil {
		return err
	}

	if err = o.Assign(p.ID()); err != nil {
		return err
	}
	if err = h.orders.Update(ctx, o); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Kind:    ports.EventOrderAssigned,
		Topic:   o.ID(),
		Payload: ports.OrderAssigned{Order: o.Clone()},
	})
	return nil
}
