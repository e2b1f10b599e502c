package queries

import (
	"context"

	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
)

// GetVendorOrdersQueryHandler lists a vendor's orders in creation order.
// An unknown vendor id yields an empty list rather than an error, the
// dashboards poll this endpoint blindly.
type GetVendorOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order listings.
func NewGetVendorOrdersQueryHandler(orders ports.OrderRepository) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{orders: orders}
}

// Handle returns snapshots of the vendor's orders.
func (h GetVendorOrdersQueryHandler) Handle(ctx context.Context, query GetVendorOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.GetByVendor(ctx, query.VendorID())
}

// GetPartnerOrdersQueryHandler lists a partner's assigned orders in
// creation order.
type GetPartnerOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetPartnerOrdersQueryHandler creates a handler for partner order listings.
func NewGetPartnerOrdersQueryHandler(orders ports.OrderRepository) GetPartnerOrdersQueryHandler {
	return GetPartnerOrdersQueryHandler{orders: orders}
}

// Handle returns snapshots of the partner's orders.
func (h GetPartnerOrdersQueryHandler) Handle(ctx context.Context, query GetPartnerOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.GetByPartner(ctx, query.PartnerID())
}
