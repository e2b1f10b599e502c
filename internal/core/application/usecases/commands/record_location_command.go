package commands

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrRecordLocationCommandIsNotConstructed = errors.New(
	"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
)

// RecordLocationCommand represents a delivery partner's position report
// for an order. The order id is not resolved here: samples referencing
// unknown orders are still ingested.
type RecordLocationCommand struct {
	orderID   kernel.ID
	partnerID kernel.ID
	point     kernel.GeoPoint
	timestamp time.Time
	accuracy  *float64

	guard guard.ConstructorGuard
}

// NewRecordLocationCommand creates a location ingest command. The
// timestamp is required; accuracy is optional device metadata.
func NewRecordLocationCommand(
	orderID kernel.ID,
	partnerID kernel.ID,
	point kernel.GeoPoint,
	timestamp time.Time,
	accuracy *float64,
) (RecordLocationCommand, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate(), point.Validate()); err != nil {
		return RecordLocationCommand{}, err
	}
	if timestamp.IsZero() {
		return RecordLocationCommand{}, errs.NewValueIsRequiredError("timestamp")
	}

	return RecordLocationCommand{
		orderID:   orderID,
		partnerID: partnerID,
		point:     point,
		timestamp: timestamp,
		accuracy:  accuracy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

// OrderID returns the order the report claims to concern.
func (c RecordLocationCommand) OrderID() kernel.ID {
	return c.orderID
}

// PartnerID returns the reporting partner.
func (c RecordLocationCommand) PartnerID() kernel.ID {
	return c.partnerID
}

// Point returns the reported coordinates.
func (c RecordLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Timestamp returns the device-reported capture time.
func (c RecordLocationCommand) Timestamp() time.Time {
	return c.timestamp
}

// Accuracy returns the optional accuracy radius in meters.
func (c RecordLocationCommand) Accuracy() *float64 {
	return c.accuracy
}
