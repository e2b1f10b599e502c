package queries

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var (
	ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
		"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
	)
	ErrGetPartnerOrdersQueryIsNotConstructed = errors.New(
		"GetPartnerOrdersQuery must be created via NewGetPartnerOrdersQuery constructor",
	)
)

// GetVendorOrdersQuery retrieves every order created by one vendor.
type GetVendorOrdersQuery struct {
	vendorID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates an order listing query for a vendor.
func NewGetVendorOrdersQuery(vendorID kernel.ID) (GetVendorOrdersQuery, error) {
	if err := vendorID.Validate(); err != nil {
		return GetVendorOrdersQuery{}, err
	}
	return GetVendorOrdersQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the vendor whose orders are listed.
func (q GetVendorOrdersQuery) VendorID() kernel.ID {
	return q.vendorID
}

// GetPartnerOrdersQuery retrieves every order assigned to one delivery
// partner.
type GetPartnerOrdersQuery struct {
	partnerID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetPartnerOrdersQuery creates an order listing query for a partner.
func NewGetPartnerOrdersQuery(partnerID kernel.ID) (GetPartnerOrdersQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerOrdersQuery{}, err
	}
	return GetPartnerOrdersQuery{
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerOrdersQueryIsNotConstructed)
}

// PartnerID returns the partner whose orders are listed.
func (q GetPartnerOrdersQuery) PartnerID() kernel.ID {
	return q.partnerID
}
