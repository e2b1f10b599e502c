package queries

import (
	"context"
	"errors"

	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

// TrackOrderQueryHandler serves the customer tracking view. It reads
// through the store on every call, so it stays accurate when the
// real-time channel is degraded.
type TrackOrderQueryHandler struct {
	orders    ports.OrderRepository
	locations ports.LocationRepository
}

// NewTrackOrderQueryHandler creates a handler for order tracking.
func NewTrackOrderQueryHandler(orders ports.OrderRepository, locations ports.LocationRepository) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders, locations: locations}
}

// Handle returns the order and its freshest location sample. A missing
// order is an ObjectNotFoundError; a missing location is not, orders
// are trackable before the first position report.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{Order: o}

	latest, err := h.locations.Latest(ctx, query.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return response, nil
	case err != nil:
		return TrackOrderQueryResponse{}, err
	}

	response.LastLocation = &latest
	return response, nil
}
