// Package partner implements the delivery partner aggregate: the courier
// account that takes assignments, toggles availability and pushes
// location samples while delivering.
package partner

import (
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

// defaultRating is given to newly registered partners. The value is
// informational only and never gates dispatch beyond ordering candidates.
const (
	defaultRating = 5.0
	ratingMin     = 0.0
	ratingMax     = 5.0
)

var (
	// ErrPartnerIsNotConstructed is returned when using an improperly
	// initialized DeliveryPartner.
	ErrPartnerIsNotConstructed = errors.New("DeliveryPartner must be created via NewDeliveryPartner or RestoreDeliveryPartner constructor")
	// ErrEmailIsRequired is returned when creating a partner without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrNameIsRequired is returned when creating a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// DeliveryPartner is the aggregate for a courier account.
//
// The availability flag is mutated only through SetAvailability; the
// last-known position is a denormalized convenience updated on every
// ingested sample and is not authoritative, the location trail in the
// store is.
type DeliveryPartner struct {
	id          kernel.ID
	email       string
	name        string
	phone       string
	vehicleType string
	available   bool
	rating      float64
	lastKnown   *kernel.GeoPoint
	lastKnownAt time.Time
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryPartner registers a new partner. New partners start
// available with the default rating, mirroring the registration flow of
// the delivery dashboard. The vehicle type is free-form text.
func NewDeliveryPartner(id kernel.ID, email, name, phone, vehicleType string) (*DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, ErrEmailIsRequired
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &DeliveryPartner{
		id:          id,
		email:       email,
		name:        name,
		phone:       phone,
		vehicleType: vehicleType,
		available:   true,
		rating:      defaultRating,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreDeliveryPartner reconstructs a partner from stored state.
func RestoreDeliveryPartner(
	id kernel.ID,
	email, name, phone, vehicleType string,
	available bool,
	rating float64,
	createdAt time.Time,
) (*DeliveryPartner, error) {
	restored, err := NewDeliveryPartner(id, email, name, phone, vehicleType)
	if err != nil {
		return nil, err
	}
	restored.available = available
	restored.rating = rating
	restored.createdAt = createdAt
	return restored, nil
}

// Validate ensures the partner was built through a constructor.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner identifier.
func (p *DeliveryPartner) ID() kernel.ID {
	return p.id
}

// Email returns the login email.
func (p *DeliveryPartner) Email() string {
	return p.email
}

// Name returns the display name.
func (p *DeliveryPartner) Name() string {
	return p.name
}

// Role returns the immutable role tag of delivery partners.
func (p *DeliveryPartner) Role() kernel.Role {
	return kernel.RoleDelivery
}

// Phone returns the contact phone.
func (p *DeliveryPartner) Phone() string {
	return p.phone
}

// VehicleType returns the free-form vehicle description.
func (p *DeliveryPartner) VehicleType() string {
	return p.vehicleType
}

// IsAvailable reports whether the partner accepts new assignments.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.available
}

// Rating returns the informational rating.
func (p *DeliveryPartner) Rating() float64 {
	return p.rating
}

// LastKnownPosition returns the denormalized last position and the time it
// was recorded, or nil when the partner has not reported yet.
func (p *DeliveryPartner) LastKnownPosition() (*kernel.GeoPoint, time.Time) {
	if p.lastKnown == nil {
		return nil, time.Time{}
	}
	point := *p.lastKnown
	return &point, p.lastKnownAt
}

// CreatedAt returns the registration timestamp stamped by the store.
func (p *DeliveryPartner) CreatedAt() time.Time {
	return p.createdAt
}

// SetAvailability toggles whether the partner accepts new assignments.
func (p *DeliveryPartner) SetAvailability(available bool) {
	p.available = available
}

// SetRating replaces the informational rating, kept on a 0 to 5 scale.
func (p *DeliveryPartner) SetRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	p.rating = rating
	return nil
}

// RecordPosition refreshes the denormalized last-known position.
func (p *DeliveryPartner) RecordPosition(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	p.lastKnown = &point
	p.lastKnownAt = at
	return nil
}

// Touch stamps the creation timestamp on first persistence.
func (p *DeliveryPartner) Touch(now time.Time) {
	if p.createdAt.IsZero() {
		p.createdAt = now
	}
}

// Clone returns an independent copy so store callers hold snapshots.
func (p *DeliveryPartner) Clone() *DeliveryPartner {
	clone := *p
	if p.lastKnown != nil {
		point := *p.lastKnown
		clone.lastKnown = &point
	}
	return &clone
}
