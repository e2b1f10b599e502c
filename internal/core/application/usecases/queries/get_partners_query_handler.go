package queries

import (
	"context"

	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/ports"
)

// GetPartnersQueryHandler lists delivery partners in registration order.
type GetPartnersQueryHandler struct {
	partners ports.PartnerRepository
}

// NewGetPartnersQueryHandler creates a handler for partner listings.
func NewGetPartnersQueryHandler(partners ports.PartnerRepository) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{partners: partners}
}

// Handle returns snapshots of all partners, or only the available ones.
func (h GetPartnersQueryHandler) Handle(ctx context.Context, query GetPartnersQuery) ([]*partner.DeliveryPartner, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if query.AvailableOnly() {
		return h.partners.GetAllAvailable(ctx)
	}
	return h.partners.GetAll(ctx)
}
