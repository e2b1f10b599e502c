package memstore

import (
	"context"
	"sync"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"
)

// OrderRepository implements ports.OrderRepository over an
// insertion-ordered slice with an id index.
type OrderRepository struct {
	mu    sync.RWMutex
	now   func() time.Time
	items []*order.Order
	index map[string]int
}

// Add persists a new order, stamping CreatedAt and UpdatedAt together so
// a fresh order satisfies UpdatedAt == CreatedAt.
func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[o.ID().String()]; exists {
		return errs.NewValueIsInvalidError("orderId")
	}

	o.Touch(r.now())
	r.index[o.ID().String()] = len(r.items)
	r.items = append(r.items, o.Clone())
	return nil
}

// Update persists changes to an existing order. The caller's snapshot
// must carry the UpdatedAt it was read with: a mismatch against the
// stored value means a concurrent writer won and the update is rejected
// with a VersionConflictError. On success UpdatedAt is refreshed on both
// the stored copy and the caller's snapshot.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[o.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", o.ID().String())
	}
	if !r.items[i].UpdatedAt().Equal(o.UpdatedAt()) {
		return errs.NewVersionConflictError("orderId", o.ID().String())
	}

	o.Touch(r.now())
	r.items[i] = o.Clone()
	return nil
}

// Get retrieves an order snapshot by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return r.items[i].Clone(), nil
}

// GetAll returns all orders in insertion order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*order.Order, len(r.items))
	for i, o := range r.items {
		all[i] = o.Clone()
	}
	return all, nil
}

// GetByVendor returns the vendor's orders, insertion order preserved.
func (r *OrderRepository) GetByVendor(_ context.Context, vendorID kernel.ID) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, o := range r.items {
		if o.VendorID() == vendorID {
			matched = append(matched, o.Clone())
		}
	}
	return matched, nil
}

// GetByPartner returns the partner's orders, insertion order preserved.
func (r *OrderRepository) GetByPartner(_ context.Context, partnerID kernel.ID) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, o := range r.items {
		if id := o.DeliveryPartnerID(); id != nil && *id == partnerID {
			matched = append(matched, o.Clone())
		}
	}
	return matched, nil
}

// GetFirstPending returns the oldest order still awaiting assignment.
func (r *OrderRepository) GetFirstPending(_ context.Context) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.items {
		if o.Status() == order.StatusPending {
			return o.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("status", order.StatusPending.String())
}
