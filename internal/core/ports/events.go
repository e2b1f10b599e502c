package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
)

// EventKind names the real-time event types carried by the broadcast
// channel. The strings are the wire-level event names.
type EventKind string

const (
	// EventLocationUpdate carries a freshly ingested location sample.
	EventLocationUpdate EventKind = "locationUpdate"
	// EventOrderStatusUpdate carries an order's new lifecycle status.
	EventOrderStatusUpdate EventKind = "orderStatusUpdate"
	// EventOrderAssigned announces a partner assignment.
	EventOrderAssigned EventKind = "orderAssigned"
	// EventNewOrder announces a newly created order.
	EventNewOrder EventKind = "newOrder"
)

// LocationUpdate is the payload of EventLocationUpdate. Order is nil when
// the sample referenced an unknown order id (orphaned samples are still
// stored and broadcast). Status is the order status after any ingest side
// effect, or empty for orphans.
type LocationUpdate struct {
	OrderID   kernel.ID
	PartnerID kernel.ID
	Sample    location.Sample
	Status    order.Status
}

// OrderStatusUpdate is the payload of EventOrderStatusUpdate.
type OrderStatusUpdate struct {
	Order *order.Order
}

// OrderAssigned is the payload of EventOrderAssigned.
type OrderAssigned struct {
	Order *order.Order
}

// NewOrder is the payload of EventNewOrder.
type NewOrder struct {
	Order *order.Order
}

// Event is one emission on the broadcast channel. Topic is the order id
// the event concerns; the channel additionally fans every event out to
// firehose subscribers (the dashboards).
type Event struct {
	Kind    EventKind
	Topic   kernel.ID
	Payload any
}

// EventPublisher is the outbound port of the real-time broadcast channel.
// Publishing is fire-and-forget and at-most-once: there is no
// acknowledgment, no replay, and a disconnected channel silently drops
// the event. Pull endpoints remain the consistency backstop.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher discards every event. It stands in for the broadcast
// channel in tests and when the channel is disabled.
type NopPublisher struct{}

// Publish implements EventPublisher by doing nothing.
func (NopPublisher) Publish(context.Context, Event) {}
