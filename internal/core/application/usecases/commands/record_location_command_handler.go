package commands

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// RecordLocationCommandHandler is the ingest path for partner position
// reports. Every sample is appended to the location trail first;
// resolving the order, the picked_up to in_transit side effect and the
// partner's last-known position refresh all happen after the append, so
// a failure there never loses the sample.
type RecordLocationCommandHandler struct {
	locations ports.LocationRepository
	orders    ports.OrderRepository
	partners  ports.PartnerRepository
	publisher ports.EventPublisher
}

// NewRecordLocationCommandHandler creates a handler for location ingest.
func NewRecordLocationCommandHandler(
	locations ports.LocationRepository,
	orders ports.OrderRepository,
	partners ports.PartnerRepository,
	publisher ports.EventPublisher,
) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		locations: locations,
		orders:    orders,
		partners:  partners,
		publisher: publisher,
	}
}

// Handle ingests one position report.
//
// Samples referencing unknown orders are stored and broadcast with an
// empty status. When the referenced order is in picked_up, the first
// sample moves it to in_transit and that move is broadcast separately.
func (h RecordLocationCommandHandler) Handle(ctx context.Context, command RecordLocationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	sample, err := location.NewSample(command.OrderID(), command.PartnerID(),
		command.Point(), command.Timestamp(), command.Accuracy())
	if err != nil {
		return err
	}
	if err = h.locations.Append(ctx, sample); err != nil {
		return err
	}

	h.refreshPartnerPosition(ctx, command)

	var status order.Status
	o, err := h.orders.Get(ctx, command.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Orphaned sample: kept in the trail, broadcast without a status.
	case err != nil:
		return err
	default:
		if o.Status() == order.StatusPickedUp {
			if err = h.markInTransit(ctx, o); err != nil {
				return err
			}
		}
		status = o.Status()
	}

	h.publisher.Publish(ctx, ports.Event{
		Kind:  ports.EventLocationUpdate,
		Topic: command.OrderID(),
		Payload: ports.LocationUpdate{
			OrderID:   command.OrderID(),
			PartnerID: command.PartnerID(),
			Sample:    sample,
			Status:    status,
		},
	})
	return nil
}

func (h RecordLocationCommandHandler) markInTransit(ctx context.Context, o *order.Order) error {
	if err := o.ChangeStatus(order.StatusInTransit); err != nil {
		return err
	}
	if err := h.orders.Update(ctx, o); err != nil {
		return err
	}

	h.publisher.Publish(ctx, ports.Event{
		Kind:    ports.EventOrderStatusUpdate,
		Topic:   o.ID(),
		Payload: ports.OrderStatusUpdate{Order: o.Clone()},
	})
	return nil
}

// refreshPartnerPosition updates the denormalized last-known position.
// A report from an unregistered partner id is not an error, the sample
// itself is already stored.
func (h RecordLocationCommandHandler) refreshPartnerPosition(ctx context.Context, command RecordLocationCommand) {
	p, err := h.partners.Get(ctx, command.PartnerID())
	if err != nil {
		return
	}
	if err = p.RecordPosition(command.Point(), command.Timestamp()); err != nil {
		return
	}
	_ = h.partners.Update(ctx, p)
}
