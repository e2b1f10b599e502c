// Package memstore implements the entity store as mutex-guarded
// in-memory repositories. The store is the single source of truth for
// all entities and location samples; it resets on process restart by
// design (durable storage is out of scope).
//
// Concurrency model: each entity kind is guarded by its own RWMutex, so
// reads run in parallel and writes serialize per kind. Order updates
// additionally carry an optimistic-concurrency check on UpdatedAt, which
// turns the last-write-wins race of concurrent mutations into an
// explicit VersionConflictError. All repositories hand out clones:
// callers hold snapshots, never live store state.
package memstore

import "time"

// Store bundles the per-entity-kind repositories over one logical
// in-memory database.
type Store struct {
	Vendors   *VendorRepository
	Partners  *PartnerRepository
	Customers *CustomerRepository
	Orders    *OrderRepository
	Locations *LocationRepository
}

// Option configures the store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to stamp CreatedAt and UpdatedAt.
// Tests use it to make timestamps deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates an empty store. Call Seed to load the demo data set.
func New(opts ...Option) *Store {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		Vendors:   &VendorRepository{now: o.now, index: map[string]int{}},
		Partners:  &PartnerRepository{now: o.now, index: map[string]int{}},
		Customers: &CustomerRepository{now: o.now, index: map[string]int{}},
		Orders:    &OrderRepository{now: o.now, index: map[string]int{}},
		Locations: &LocationRepository{},
	}
}
