package commands

import (
	"context"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
)

// CreateOrderCommandHandler creates orders on behalf of vendors and
// announces them on the broadcast channel.
type CreateOrderCommandHandler struct {
	orders    ports.OrderRepository
	vendors   ports.VendorRepository
	customers ports.CustomerRepository
	publisher ports.EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	orders ports.OrderRepository,
	vendors ports.VendorRepository,
	customers ports.CustomerRepository,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:    orders,
		vendors:   vendors,
		customers: customers,
		publisher: publisher,
	}
}

// Handle creates the order in pending status. The referenced vendor and
// customer must exist; the total amount is stored as supplied, not summed
// from the line items.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.vendors.Get(ctx, command.VendorID()); err != nil {
		return err
	}
	if _, err := h.customers.Get(ctx, command.CustomerID()); err != nil {
		return err
	}

	o, err := order.NewOrder(command.OrderID(), command.VendorID(), command.CustomerID(),
		command.Items(), command.PickupAddress(), command.DeliveryAddress(),
		command.PickupPoint(), command.DeliveryPoint(), command.TotalAmount(),
		command.CustomerName(), command.CustomerPhone())
	if err != nil {
		return err
	}

	if err = h.orders.Add(ctx, o); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Kind:    ports.EventNewOrder,
		Topic:   o.ID(),
		Payload: ports.NewOrder{Order: o.Clone()},
	})
	return nil
}
