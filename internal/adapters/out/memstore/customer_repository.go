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

// CustomerRepository implements ports.CustomerRepository over an
// insertion-ordered slice with an id index.
type CustomerRepository struct {
	mu    sync.RWMutex
	now   func() time.Time
	items []*account.Customer
	index map[string]int
}

// Add persists a new customer and stamps its creation time.
func (r *CustomerRepository) Add(_ context.Context, c *account.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[c.ID().String()]; exists {
		return errs.NewValueIsInvalidError("customerId")
	}

	c.Touch(r.now())
	r.index[c.ID().String()] = len(r.items)
	r.items = append(r.items, c.Clone())
	return nil
}

// Get retrieves a customer snapshot by id.
func (r *CustomerRepository) Get(_ context.Context, id kernel.ID) (*account.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customerId", id.String())
	}
	return r.items[i].Clone(), nil
}

// GetByEmail retrieves a customer snapshot by login email. Emails match
// case-insensitively, same as the credential store.
func (r *CustomerRepository) GetByEmail(_ context.Context, email string) (*account.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if strings.EqualFold(c.Email(), email) {
			return c.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

// GetAll returns all customers in insertion order.
func (r *CustomerRepository) GetAll(_ context.Context) ([]*account.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*account.Customer, len(r.items))
	for i, c := range r.items {
		all[i] = c.Clone()
	}
	return all, nil
}
