package order

import (
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the delivery workflow. It carries the
// owning vendor and customer references, the validated item lines, free
// text pickup and delivery addresses with their coordinates, the trusted
// total amount, the denormalized customer snapshot and the lifecycle
// status with its timestamps.
//
// Invariants:
//   - vendorID and customerID are set and never change
//   - deliveryPartnerID is nil until assignment
//   - status only moves along the transition table in status.go
//   - UpdatedAt never decreases and starts equal to CreatedAt
//
// The aggregate does not read clocks. The store stamps CreatedAt on
// creation and refreshes UpdatedAt through Touch on every persisted
// mutation, which keeps the timestamp invariant in one place.
type Order struct {
	id                kernel.ID
	vendorID          kernel.ID
	customerID        kernel.ID
	deliveryPartnerID *kernel.ID
	items             []Item
	status            Status
	pickupAddress     string
	deliveryAddress   string
	pickupPoint       kernel.GeoPoint
	deliveryPoint     kernel.GeoPoint
	totalAmount       float64
	customerName      string
	customerPhone     string
	createdAt         time.Time
	updatedAt         time.Time
	estimatedDelivery *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending order. The total amount is trusted as
// supplied and not re-derived from the items. Timestamps are zero until
// the store persists the order and stamps them.
func NewOrder(
	id kernel.ID,
	vendorID kernel.ID,
	customerID kernel.ID,
	items []Item,
	pickupAddress string,
	deliveryAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryPoint kernel.GeoPoint,
	totalAmount float64,
	customerName string,
	customerPhone string,
) (*Order, error) {
	if err := errors.Join(
		validateRequiredID("orderId", id),
		validateRequiredID("vendorId", vendorID),
		validateRequiredID("customerId", customerID),
		validateItems(items),
		validateAddress("pickupAddress", pickupAddress),
		validateAddress("deliveryAddress", deliveryAddress),
		pickupPoint.Validate(),
		deliveryPoint.Validate(),
		validateTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:              id,
		vendorID:        vendorID,
		customerID:      customerID,
		items:           append([]Item(nil), items...),
		status:          StatusPending,
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

// RestoreOrder reconstructs an order from stored state, including seed
// data. Unlike NewOrder it accepts any valid status and existing
// timestamps, but it still enforces the structural invariants.
func RestoreOrder(
	id kernel.ID,
	vendorID kernel.ID,
	customerID kernel.ID,
	deliveryPartnerID *kernel.ID,
	items []Item,
	status Status,
	pickupAddress string,
	deliveryAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryPoint kernel.GeoPoint,
	totalAmount float64,
	customerName string,
	customerPhone string,
	createdAt time.Time,
	updatedAt time.Time,
	estimatedDelivery *time.Time,
) (*Order, error) {
	restored, err := NewOrder(id, vendorID, customerID, items,
		pickupAddress, deliveryAddress, pickupPoint, deliveryPoint,
		totalAmount, customerName, customerPhone)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidErrorWithCause("updatedAt",
			fmt.Errorf("%s is before createdAt %s", updatedAt, createdAt))
	}

	restored.status = status
	restored.createdAt = createdAt
	restored.updatedAt = updatedAt
	restored.estimatedDelivery = estimatedDelivery
	if deliveryPartnerID != nil {
		partnerID := *deliveryPartnerID
		if err = partnerID.Validate(); err != nil {
			return nil, err
		}
		restored.deliveryPartnerID = &partnerID
	}

	return restored, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// VendorID returns the owning vendor's identifier.
func (o *Order) VendorID() kernel.ID {
	return o.vendorID
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

// DeliveryPartnerID returns the assigned partner's identifier, or nil
// while the order is unassigned.
func (o *Order) DeliveryPartnerID() *kernel.ID {
	if o.deliveryPartnerID == nil {
		return nil
	}
	id := *o.deliveryPartnerID
	return &id
}

// Items returns a copy of the order lines in their original sequence.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PickupAddress returns the free-text pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// DeliveryAddress returns the free-text delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// PickupPoint returns the pickup coordinates.
func (o *Order) PickupPoint() kernel.GeoPoint {
	return o.pickupPoint
}

// DeliveryPoint returns the delivery coordinates.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// TotalAmount returns the trusted order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CustomerName returns the denormalized customer name snapshot.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the denormalized customer phone snapshot.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CreatedAt returns the creation timestamp stamped by the store.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp stamped by the store.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// EstimatedDelivery returns the optional estimated delivery time.
func (o *Order) EstimatedDelivery() *time.Time {
	if o.estimatedDelivery == nil {
		return nil
	}
	t := *o.estimatedDelivery
	return &t
}

// Assign attaches a delivery partner and moves the order to assigned.
// Assignment is allowed from pending and, as reassignment, from assigned;
// any other source status is rejected. Partner availability is not
// checked here: callers filter available partners before offering the
// choice.
func (o *Order) Assign(partnerID kernel.ID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(StatusAssigned)
	if err != nil {
		return err
	}

	o.status = next
	o.deliveryPartnerID = &partnerID
	return nil
}

// ChangeStatus moves the order along the transition table, rejecting
// illegal moves with an IllegalTransitionError. Transitioning into
// assigned through this method additionally requires a partner to be
// attached already; use Assign for the assignment itself.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if newStatus == StatusAssigned && o.deliveryPartnerID == nil {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("assigned requires a delivery partner"))
	}

	o.status = newStatus
	return nil
}

// Touch stamps the mutation timestamps. The store calls it when
// persisting: the first call sets CreatedAt and UpdatedAt together, later
// calls only advance UpdatedAt, never moving it backwards.
func (o *Order) Touch(now time.Time) {
	if o.createdAt.IsZero() {
		o.createdAt = now
		o.updatedAt = now
		return
	}
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
}

// SetEstimatedDelivery records the optional estimated delivery time.
func (o *Order) SetEstimatedDelivery(t time.Time) {
	o.estimatedDelivery = &t
}

// Clone returns an independent copy of the order. The store hands out
// clones so callers hold snapshots, never live store state.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = append([]Item(nil), o.items...)
	if o.deliveryPartnerID != nil {
		id := *o.deliveryPartnerID
		clone.deliveryPartnerID = &id
	}
	if o.estimatedDelivery != nil {
		t := *o.estimatedDelivery
		clone.estimatedDelivery = &t
	}
	return &clone
}

func validateRequiredID(paramName string, id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func validateAddress(paramName, address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

func validateTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%g is negative", totalAmount))
	}
	return nil
}
