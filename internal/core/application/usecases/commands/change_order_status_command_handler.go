package commands

import (
	"context"

	"tracker/internal/core/ports"
)

// ChangeOrderStatusCommandHandler moves orders through their lifecycle
// and announces each move.
type ChangeOrderStatusCommandHandler struct {
	orders    ports.OrderRepository
	publisher ports.EventPublisher
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	orders ports.OrderRepository,
	publisher ports.EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders, publisher: publisher}
}

// Handle applies the status change. An illegal move from the current
// status is rejected with an IllegalTransitionError and nothing is
// persisted or broadcast.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(command.Status()); err != nil {
		return err
	}
	if err = h.orders.Update(ctx, o); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Kind:    ports.EventOrderStatusUpdate,
		Topic:   o.ID(),
		Payload: ports.OrderStatusUpdate{Order: o.Clone()},
	})
	return nil
}
