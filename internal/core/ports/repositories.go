// Package ports defines the contracts between the application core and
// the infrastructure adapters: per-entity-kind repositories over the
// entity store, and the publisher side of the real-time broadcast
// channel. These interfaces enable dependency inversion and testability.
//
// Repositories hand out snapshots: a returned aggregate is an independent
// copy, and callers making follow-up decisions must re-read the store
// rather than trust a previously returned object.
package ports

import (
	"context"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
)

// VendorRepository is the store contract for vendor accounts.
type VendorRepository interface {
	// Add persists a new vendor and stamps its creation time.
	Add(ctx context.Context, vendor *account.Vendor) error

	// Get retrieves a vendor by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*account.Vendor, error)

	// GetByEmail retrieves a vendor by login email, or an ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*account.Vendor, error)

	// GetAll returns all vendors in insertion order.
	GetAll(ctx context.Context) ([]*account.Vendor, error)
}

// PartnerRepository is the store contract for delivery partner accounts.
type PartnerRepository interface {
	// Add persists a new partner and stamps its creation time.
	Add(ctx context.Context, p *partner.DeliveryPartner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, p *partner.DeliveryPartner) error

	// Get retrieves a partner by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*partner.DeliveryPartner, error)

	// GetByEmail retrieves a partner by login email, or an ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*partner.DeliveryPartner, error)

	// GetAll returns all partners in insertion order.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// GetAllAvailable returns partners currently accepting assignments,
	// insertion order preserved.
	GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error)
}

// CustomerRepository is the store contract for customer accounts.
type CustomerRepository interface {
	// Add persists a new customer and stamps its creation time.
	Add(ctx context.Context, c *account.Customer) error

	// Get retrieves a customer by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*account.Customer, error)

	// GetByEmail retrieves a customer by login email, or an ObjectNotFoundError.
	GetByEmail(ctx context.Context, email string) (*account.Customer, error)

	// GetAll returns all customers in insertion order.
	GetAll(ctx context.Context) ([]*account.Customer, error)
}

// OrderRepository is the store contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and stamps CreatedAt and UpdatedAt.
	Add(ctx context.Context, o *order.Order) error

	// Update persists changes to an existing order and refreshes
	// UpdatedAt. The snapshot's UpdatedAt is compared against the stored
	// value; a mismatch means a concurrent writer got there first and a
	// VersionConflictError is returned.
	Update(ctx context.Context, o *order.Order) error

	// Get retrieves an order by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll returns all orders in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByVendor returns the vendor's orders, insertion order preserved.
	GetByVendor(ctx context.Context, vendorID kernel.ID) ([]*order.Order, error)

	// GetByPartner returns the partner's orders, insertion order preserved.
	GetByPartner(ctx context.Context, partnerID kernel.ID) ([]*order.Order, error)

	// GetFirstPending returns the oldest order still in pending status,
	// or an ObjectNotFoundError. Used by the dispatch job.
	GetFirstPending(ctx context.Context) (*order.Order, error)
}

// LocationRepository is the append-only store contract for location samples.
type LocationRepository interface {
	// Append adds a sample. Samples are never overwritten; orphaned order
	// ids are accepted.
	Append(ctx context.Context, sample location.Sample) error

	// GetByOrder returns every sample for the order, newest timestamp first.
	GetByOrder(ctx context.Context, orderID kernel.ID) ([]location.Sample, error)

	// Latest returns the sample with the maximum timestamp for the order,
	// or an ObjectNotFoundError when the order has no samples yet.
	Latest(ctx context.Context, orderID kernel.ID) (location.Sample, error)
}
