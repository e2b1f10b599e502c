package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/partner"
	"tracker/internal/pkg/errs"
)

// PartnerRepository implements ports.PartnerRepository over an
// insertion-ordered slice with an id index.
type PartnerRepository struct {
	mu    sync.RWMutex
	now   func() time.Time
	items []*partner.DeliveryPartner
	index map[string]int
}

// Add persists a new partner and stamps its creation time.
func (r *PartnerRepository) Add(_ context.Context, p *partner.DeliveryPartner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[p.ID().String()]; exists {
		return errs.NewValueIsInvalidError("deliveryPartnerId")
	}

	p.Touch(r.now())
	r.index[p.ID().String()] = len(r.items)
	r.items = append(r.items, p.Clone())
	return nil
}

// Update persists changes to an existing partner.
func (r *PartnerRepository) Update(_ context.Context, p *partner.DeliveryPartner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[p.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("deliveryPartnerId", p.ID().String())
	}
	r.items[i] = p.Clone()
	return nil
}

// Get retrieves a partner snapshot by id.
func (r *PartnerRepository) Get(_ context.Context, id kernel.ID) (*partner.DeliveryPartner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("deliveryPartnerId", id.String())
	}
	return r.items[i].Clone(), nil
}

// GetByEmail retrieves a partner snapshot by login email. Emails match
// case-insensitively, same as the credential store.
func (r *PartnerRepository) GetByEmail(_ context.Context, email string) (*partner.DeliveryPartner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if strings.EqualFold(p.Email(), email) {
			return p.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

// GetAll returns all partners in insertion order.
func (r *PartnerRepository) GetAll(_ context.Context) ([]*partner.DeliveryPartner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*partner.DeliveryPartner, len(r.items))
	for i, p := range r.items {
		all[i] = p.Clone()
	}
	return all, nil
}

// GetAllAvailable returns the partners currently accepting assignments.
func (r *PartnerRepository) GetAllAvailable(_ context.Context) ([]*partner.DeliveryPartner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	available := make([]*partner.DeliveryPartner, 0, len(r.items))
	for _, p := range r.items {
		if p.IsAvailable() {
			available = append(available, p.Clone())
		}
	}
	return available, nil
}
