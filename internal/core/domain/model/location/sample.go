// Package location defines the append-only location sample record: one
// timestamped position reading from a delivery partner's device, always
// tied to an order and a partner.
package location

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// ErrSampleIsNotConstructed is returned when using an improperly
// initialized Sample.
var ErrSampleIsNotConstructed = errors.New("Sample must be created via NewSample constructor")

// Sample is a single location reading. Samples are immutable and
// append-only: once stored they are never edited or deleted. The order id
// the sample references is not required to exist, the store accepts
// orphaned samples.
//
// Duplicate and out-of-order timestamps are accepted as-is; the current
// location of an order is always the sample with the maximum timestamp,
// not the last arrival.
type Sample struct {
	orderID   kernel.ID
	partnerID kernel.ID
	point     kernel.GeoPoint
	timestamp time.Time
	accuracy  *float64

	guard guard.ConstructorGuard
}

// NewSample creates a location sample. All fields except accuracy are
// required; accuracy, when present, is in meters.
func NewSample(orderID, partnerID kernel.ID, point kernel.GeoPoint, timestamp time.Time, accuracy *float64) (Sample, error) {
	if err := errors.Join(
		orderID.Validate(),
		partnerID.Validate(),
		point.Validate(),
	); err != nil {
		return Sample{}, err
	}
	if timestamp.IsZero() {
		return Sample{}, errs.NewValueIsRequiredError("timestamp")
	}

	sample := Sample{
		orderID:   orderID,
		partnerID: partnerID,
		point:     point,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}
	if accuracy != nil {
		a := *accuracy
		sample.accuracy = &a
	}
	return sample, nil
}

// Validate ensures the sample was built through the constructor.
func (s Sample) Validate() error {
	return s.guard.Validate(ErrSampleIsNotConstructed)
}

// OrderID returns the order the sample belongs to.
func (s Sample) OrderID() kernel.ID {
	return s.orderID
}

// PartnerID returns the partner that reported the sample.
func (s Sample) PartnerID() kernel.ID {
	return s.partnerID
}

// Point returns the reported position.
func (s Sample) Point() kernel.GeoPoint {
	return s.point
}

// Timestamp returns the device-side reading time.
func (s Sample) Timestamp() time.Time {
	return s.timestamp
}

// Accuracy returns the optional accuracy in meters, or nil.
func (s Sample) Accuracy() *float64 {
	if s.accuracy == nil {
		return nil
	}
	a := *s.accuracy
	return &a
}
