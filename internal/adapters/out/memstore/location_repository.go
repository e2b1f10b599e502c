package memstore

import (
	"context"
	"sort"
	"sync"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/pkg/errs"
)

// LocationRepository implements ports.LocationRepository as an
// append-only log of samples. Rows are never edited or deleted, and the
// order id a sample references is not required to exist.
type LocationRepository struct {
	mu    sync.RWMutex
	items []location.Sample
}

// Append adds a sample in arrival order.
func (r *LocationRepository) Append(_ context.Context, sample location.Sample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, sample)
	return nil
}

// GetByOrder returns the order's samples sorted newest timestamp first.
// Arrival order is irrelevant: samples may arrive with duplicate or
// out-of-order timestamps.
func (r *LocationRepository) GetByOrder(_ context.Context, orderID kernel.ID) ([]location.Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]location.Sample, 0)
	for _, s := range r.items {
		if s.OrderID() == orderID {
			matched = append(matched, s)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp().After(matched[j].Timestamp())
	})
	return matched, nil
}

// Latest returns the sample with the maximum timestamp for the order.
// Among equal timestamps the later-appended sample wins.
func (r *LocationRepository) Latest(_ context.Context, orderID kernel.ID) (location.Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest location.Sample
		found  bool
	)
	for _, s := range r.items {
		if s.OrderID() != orderID {
			continue
		}
		if !found || !s.Timestamp().Before(latest.Timestamp()) {
			latest = s
			found = true
		}
	}
	if !found {
		return location.Sample{}, errs.NewObjectNotFoundError("orderId", orderID.String())
	}
	return latest, nil
}
