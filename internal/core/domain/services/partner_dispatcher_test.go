package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/domain/model/partner"
	"tracker/internal/core/domain/services"
	"tracker/internal/pkg/errs"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewID(), "Ramen", 1, 14.0, "")
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(40.7589, -73.9851)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(40.7505, -73.9934)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewID(), "vendor-1", "customer-1",
		[]order.Item{item}, "pickup", "drop", pickup, drop, 14.0,
		"John Doe", "+1-555-0301")
	require.NoError(t, err)
	return o
}

func newPartner(t *testing.T, name string, available bool, rating float64) *partner.DeliveryPartner {
	t.Helper()

	p, err := partner.NewDeliveryPartner(kernel.NewID(), name+"@example.com", name, "", "bicycle")
	require.NoError(t, err)
	p.SetAvailability(available)
	require.NoError(t, p.SetRating(rating))
	return p
}

func Test_PartnerDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewPartnerDispatcher()

	t.Run("should pick the highest rated available partner", func(t *testing.T) {
		o := newPendingOrder(t)
		low := newPartner(t, "low", true, 4.1)
		high := newPartner(t, "high", true, 4.9)
		offline := newPartner(t, "offline", false, 5.0)

		best, err := dispatcher.Dispatch(o, []*partner.DeliveryPartner{low, high, offline})

		require.NoError(t, err)
		assert.Equal(t, high.ID(), best.ID())
		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.DeliveryPartnerID())
		assert.Equal(t, high.ID(), *o.DeliveryPartnerID())
	})

	t.Run("should prefer the first partner on rating tie", func(t *testing.T) {
		o := newPendingOrder(t)
		first := newPartner(t, "first", true, 4.5)
		second := newPartner(t, "second", true, 4.5)

		best, err := dispatcher.Dispatch(o, []*partner.DeliveryPartner{first, second})

		require.NoError(t, err)
		assert.Equal(t, first.ID(), best.ID())
	})

	t.Run("should return error when no partner is available", func(t *testing.T) {
		o := newPendingOrder(t)
		offline := newPartner(t, "offline", false, 4.8)

		_, err := dispatcher.Dispatch(o, []*partner.DeliveryPartner{offline})

		assert.ErrorIs(t, err, services.ErrPartnerNotFound)
	})

	t.Run("should return error for empty partner slice", func(t *testing.T) {
		_, err := dispatcher.Dispatch(newPendingOrder(t), nil)

		assert.ErrorIs(t, err, services.ErrPartnerNotFound)
	})

	t.Run("should not dispatch a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewID()))
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp))
		require.NoError(t, o.ChangeStatus(order.StatusInTransit))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered))

		_, err := dispatcher.Dispatch(o, []*partner.DeliveryPartner{newPartner(t, "p", true, 4.5)})

		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}
