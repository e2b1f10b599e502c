package queries

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the customer tracking view for one order:
// the order itself plus the freshest known courier position.
type TrackOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order id.
func NewTrackOrderQuery(orderID kernel.ID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the tracked order id.
func (q TrackOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// TrackOrderQueryResponse is the tracking view. LastLocation is nil when
// no position has been reported for the order yet.
type TrackOrderQueryResponse struct {
	Order        *order.Order
	LastLocation *location.Sample
}
