package commands

import (
	"context"
	"errors"

	"tracker/internal/core/domain/services"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

var (
	// ErrNoPendingOrder is returned when the dispatch run found nothing to
	// assign. The dispatch job treats it as an idle tick.
	ErrNoPendingOrder = errors.New("no pending order found")
	// ErrNoAvailablePartners is returned when every partner is offline.
	ErrNoAvailablePartners = errors.New("no available delivery partners found")
)

// DispatchPartnerCommandHandler picks the oldest pending order and hands
// it to the highest-rated available partner.
type DispatchPartnerCommandHandler struct {
	orders     ports.OrderRepository
	partners   ports.PartnerRepository
	dispatcher services.PartnerDispatcher
	publisher  ports.EventPublisher
}

// NewDispatchPartnerCommandHandler creates a handler for automatic dispatch.
func NewDispatchPartnerCommandHandler(
	orders ports.OrderRepository,
	partners ports.PartnerRepository,
	publisher ports.EventPublisher,
) DispatchPartnerCommandHandler {
	return DispatchPartnerCommandHandler{
		orders:     orders,
		partners:   partners,
		dispatcher: services.NewPartnerDispatcher(),
		publisher:  publisher,
	}
}

// Handle runs one dispatch round. Returns ErrNoPendingOrder or
// ErrNoAvailablePartners when there is nothing to do.
func (h DispatchPartnerCommandHandler) Handle(ctx context.Context, command DispatchPartnerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	o, err := h.orders.GetFirstPending(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingOrder
	}
	if err != nil {
		return err
	}

	available, err := h.partners.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		return ErrNoAvailablePartners
	}

	if _, err = h.dispatcher.Dispatch(o, available); err != nil {
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
