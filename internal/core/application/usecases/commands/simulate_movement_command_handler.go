package commands

import (
	"context"
	"errors"
	"math"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/ports"
)

// Movement step per tick and the radius at which a waypoint counts as
// reached, both in degrees.
const (
	simulationStep = 0.0005
	arrivalRadius  = 0.0002
)

// SimulateMovementCommandHandler walks active deliveries through the demo
// lifecycle. Position reports go through the regular ingest handler so the
// usual side effects fire: trails grow, partners refresh their last known
// position, picked up orders flip to in transit, events go out. Waypoint
// arrivals advance the order status through the regular status handler.
type SimulateMovementCommandHandler struct {
	orders   ports.OrderRepository
	partners ports.PartnerRepository
	recorder RecordLocationCommandHandler
	statuses ChangeOrderStatusCommandHandler
	now      func() time.Time
}

func NewSimulateMovementCommandHandler(
	orders ports.OrderRepository,
	partners ports.PartnerRepository,
	recorder RecordLocationCommandHandler,
	statuses ChangeOrderStatusCommandHandler,
) SimulateMovementCommandHandler {
	return SimulateMovementCommandHandler{
		orders:   orders,
		partners: partners,
		recorder: recorder,
		statuses: statuses,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the handler's time source.
func (h SimulateMovementCommandHandler) WithClock(now func() time.Time) SimulateMovementCommandHandler {
	h.now = now
	return h
}

func (h SimulateMovementCommandHandler) Handle(ctx context.Context, command SimulateMovementCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return err
	}

	var stepErrs []error
	for _, o := range orders {
		if !isMovable(o) {
			continue
		}
		if err := h.advance(ctx, o); err != nil {
			stepErrs = append(stepErrs, err)
		}
	}
	return errors.Join(stepErrs...)
}

func isMovable(o *order.Order) bool {
	if o.DeliveryPartnerID() == nil {
		return false
	}
	switch o.Status() {
	case order.StatusAssigned, order.StatusPickedUp, order.StatusInTransit:
		return true
	default:
		return false
	}
}

// advance moves the order's partner one step toward the current waypoint,
// or advances the order status when the waypoint is reached.
func (h SimulateMovementCommandHandler) advance(ctx context.Context, o *order.Order) error {
	p, err := h.partners.Get(ctx, *o.DeliveryPartnerID())
	if err != nil {
		return err
	}

	position := currentPosition(p, o)
	target := o.DeliveryPoint()
	if o.Status() == order.StatusAssigned {
		target = o.PickupPoint()
	}

	if withinRadius(position, target) {
		return h.arrive(ctx, o, p, position)
	}

	next, err := stepToward(position, target)
	if err != nil {
		return err
	}
	return h.record(ctx, o.ID(), p.ID(), next)
}

// arrive handles a partner standing on the current waypoint.
func (h SimulateMovementCommandHandler) arrive(ctx context.Context, o *order.Order, p *partner.DeliveryPartner, position kernel.GeoPoint) error {
	switch o.Status() {
	case order.StatusAssigned:
		return h.changeStatus(ctx, o.ID(), order.StatusPickedUp)
	case order.StatusInTransit:
		return h.changeStatus(ctx, o.ID(), order.StatusDelivered)
	default:
		// Picked up at the vendor: the next position report flips the
		// order to in transit through the ingest side effect.
		return h.record(ctx, o.ID(), p.ID(), position)
	}
}

func (h SimulateMovementCommandHandler) record(ctx context.Context, orderID, partnerID kernel.ID, point kernel.GeoPoint) error {
	cmd, err := NewRecordLocationCommand(orderID, partnerID, point, h.now(), nil)
	if err != nil {
		return err
	}
	return h.recorder.Handle(ctx, cmd)
}

func (h SimulateMovementCommandHandler) changeStatus(ctx context.Context, orderID kernel.ID, status order.Status) error {
	cmd, err := NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	return h.statuses.Handle(ctx, cmd)
}

// currentPosition is the partner's last known position, or the pickup point
// for a partner who has not reported yet.
func currentPosition(p *partner.DeliveryPartner, o *order.Order) kernel.GeoPoint {
	if point, _ := p.LastKnownPosition(); point != nil {
		return *point
	}
	return o.PickupPoint()
}

func withinRadius(position, target kernel.GeoPoint) bool {
	return math.Abs(position.Latitude()-target.Latitude()) <= arrivalRadius &&
		math.Abs(position.Longitude()-target.Longitude()) <= arrivalRadius
}

// stepToward moves at most simulationStep degrees per axis toward target.
func stepToward(position, target kernel.GeoPoint) (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(
		stepAxis(position.Latitude(), target.Latitude()),
		stepAxis(position.Longitude(), target.Longitude()),
	)
}

func stepAxis(from, to float64) float64 {
	delta := to - from
	if math.Abs(delta) <= simulationStep {
		return to
	}
	if delta > 0 {
		return from + simulationStep
	}
	return from - simulationStep
}
