package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"tracker/internal/core/domain/model/account"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

// VendorRepository implements ports.VendorRepository over an
// insertion-ordered slice with an id index.
type VendorRepository struct {
	mu    sync.RWMutex
	now   func() time.Time
	items []*account.Vendor
	index map[string]int
}

// Add persists a new vendor and stamps its creation time.
func (r *VendorRepository) Add(_ context.Context, vendor *account.Vendor) error {
	if err := vendor.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[vendor.ID().String()]; exists {
		return errs.NewValueIsInvalidError("vendorId")
	}

	vendor.Touch(r.now())
	r.index[vendor.ID().String()] = len(r.items)
	r.items = append(r.items, vendor.Clone())
	return nil
}

// Get retrieves a vendor snapshot by id.
func (r *VendorRepository) Get(_ context.Context, id kernel.ID) (*account.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vendorId", id.String())
	}
	return r.items[i].Clone(), nil
}

// GetByEmail retrieves a vendor snapshot by login email. Emails match
// case-insensitively, same as the credential store.
func (r *VendorRepository) GetByEmail(_ context.Context, email string) (*account.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.items {
		if strings.EqualFold(v.Email(), email) {
			return v.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

// GetAll returns all vendors in insertion order.
func (r *VendorRepository) GetAll(_ context.Context) ([]*account.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*account.Vendor, len(r.items))
	for i, v := range r.items {
		all[i] = v.Clone()
	}
	return all, nil
}
