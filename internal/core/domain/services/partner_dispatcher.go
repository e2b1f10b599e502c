package services

import (
	"errors"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no available delivery partner exists
// for order dispatch, either because none were provided or none is online.
var ErrPartnerNotFound = errors.New("delivery partner not found")

// PartnerDispatcher is a domain service that picks the best available
// delivery partner for a pending order and executes the assignment.
//
// Selection prioritizes the highest rating; the first partner wins ties.
type PartnerDispatcher struct{}

// NewPartnerDispatcher creates a new PartnerDispatcher instance.
func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Dispatch finds the best available partner for the order and assigns it.
//
// Returns ErrPartnerNotFound when no partner in the slice is available,
// or a transition error when the order cannot accept an assignment.
func (d PartnerDispatcher) Dispatch(o *order.Order, partners []*partner.DeliveryPartner) (*partner.DeliveryPartner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestPartner(partners)
	if err != nil {
		return nil, err
	}

	if err = o.Assign(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d PartnerDispatcher) findBestPartner(partners []*partner.DeliveryPartner) (*partner.DeliveryPartner, error) {
	var best *partner.DeliveryPartner

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			continue
		}
		if best == nil || p.Rating() > best.Rating() {
			best = p
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}
	return best, nil
}
