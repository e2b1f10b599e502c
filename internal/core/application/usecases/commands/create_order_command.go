package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemSpec describes one line item of a new order. Ids are generated
// when the order is created.
type ItemSpec struct {
	Name        string
	Quantity    int
	Price       float64
	Description string
}

// CreateOrderCommand represents a vendor's request to create a delivery
// order. The order id is generated at construction; the total amount is
// trusted as supplied and not re-derived from the line items.
type CreateOrderCommand struct {
	orderID         kernel.ID
	vendorID        kernel.ID
	customerID      kernel.ID
	items           []order.Item
	pickupAddress   string
	deliveryAddress string
	pickupPoint     kernel.GeoPoint
	deliveryPoint   kernel.GeoPoint
	totalAmount     float64
	customerName    string
	customerPhone   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order creation command. At least one
// item is required and each item is validated eagerly so a bad line item
// fails the whole request.
func NewCreateOrderCommand(
	vendorID kernel.ID,
	customerID kernel.ID,
	items []ItemSpec,
	pickupAddress string,
	deliveryAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryPoint kernel.GeoPoint,
	totalAmount float64,
	customerName string,
	customerPhone string,
) (CreateOrderCommand, error) {
	if err := errors.Join(vendorID.Validate(), customerID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	orderItems := make([]order.Item, 0, len(items))
	for _, spec := range items {
		item, err := order.NewItem(kernel.NewID(), spec.Name, spec.Quantity, spec.Price, spec.Description)
		if err != nil {
			return CreateOrderCommand{}, err
		}
		orderItems = append(orderItems, item)
	}

	return CreateOrderCommand{
		orderID:         kernel.NewID(),
		vendorID:        vendorID,
		customerID:      customerID,
		items:           orderItems,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		pickupPoint:     pickupPoint,
		deliveryPoint:   deliveryPoint,
		totalAmount:     totalAmount,
		customerName:    customerName,
		customerPhone:   customerPhone,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated id for the new order.
func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// VendorID returns the creating vendor's id.
func (c CreateOrderCommand) VendorID() kernel.ID {
	return c.vendorID
}

// CustomerID returns the recipient customer's id.
func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

// Items returns the validated line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// PickupAddress returns the pickup address text.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery address text.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupPoint returns the pickup coordinates.
func (c CreateOrderCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

// DeliveryPoint returns the delivery coordinates.
func (c CreateOrderCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// TotalAmount returns the caller supplied order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// CustomerName returns the contact name snapshot.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the contact phone snapshot.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}
