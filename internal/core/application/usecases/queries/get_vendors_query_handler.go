package queries

import (
	"context"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/ports"
)

// GetVendorsQueryHandler lists vendor accounts in registration order.
type GetVendorsQueryHandler struct {
	vendors ports.VendorRepository
}

// NewGetVendorsQueryHandler creates a handler for vendor listings.
func NewGetVendorsQueryHandler(vendors ports.VendorRepository) GetVendorsQueryHandler {
	return GetVendorsQueryHandler{vendors: vendors}
}

// Handle returns snapshots of all vendors.
func (h GetVendorsQueryHandler) Handle(ctx context.Context, query GetVendorsQuery) ([]*account.Vendor, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.vendors.GetAll(ctx)
}
