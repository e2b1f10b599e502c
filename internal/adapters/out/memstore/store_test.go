package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/adapters/out/memstore"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/location"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"
)

func newOrderFixture(t *testing.T, id string) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewID(), "Pad Thai", 2, 11.50, "")
	require.NoError(t, err)
	pickup, err := kernel.NewGeoPoint(40.7589, -73.9851)
	require.NoError(t, err)
	drop, err := kernel.NewGeoPoint(40.7505, -73.9934)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.ID(id), "vendor-1", "customer-1",
		[]order.Item{item}, "123 Food Street", "789 Residential Lane",
		pickup, drop, 23.0, "John Doe", "+1-555-0301")
	require.NoError(t, err)
	return o
}

func Test_OrderRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should stamp created and updated on add", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		store := memstore.New(memstore.WithClock(func() time.Time { return now }))

		o := newOrderFixture(t, "order-a")
		require.NoError(t, store.Orders.Add(ctx, o))

		got, err := store.Orders.Get(ctx, "order-a")
		require.NoError(t, err)
		assert.Equal(t, now, got.CreatedAt())
		assert.Equal(t, now, got.UpdatedAt())
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		store := memstore.New()
		require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, "order-a")))

		err := store.Orders.Add(ctx, newOrderFixture(t, "order-a"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should list in insertion order", func(t *testing.T) {
		store := memstore.New()
		for _, id := range []string{"order-c", "order-a", "order-b"} {
			require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, id)))
		}

		all, err := store.Orders.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, kernel.ID("order-c"), all[0].ID())
		assert.Equal(t, kernel.ID("order-a"), all[1].ID())
		assert.Equal(t, kernel.ID("order-b"), all[2].ID())
	})

	t.Run("should detect stale snapshot on update", func(t *testing.T) {
		clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		store := memstore.New(memstore.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}))
		require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, "order-a")))

		first, err := store.Orders.Get(ctx, "order-a")
		require.NoError(t, err)
		second, err := store.Orders.Get(ctx, "order-a")
		require.NoError(t, err)

		require.NoError(t, first.Assign("delivery-1"))
		require.NoError(t, store.Orders.Update(ctx, first))

		require.NoError(t, second.ChangeStatus(order.StatusCancelled))
		err = store.Orders.Update(ctx, second)
		assert.ErrorIs(t, err, errs.ErrVersionConflict)
	})

	t.Run("should refresh snapshot updated timestamp after update", func(t *testing.T) {
		clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		store := memstore.New(memstore.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}))
		require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, "order-a")))

		o, err := store.Orders.Get(ctx, "order-a")
		require.NoError(t, err)
		require.NoError(t, o.Assign("delivery-1"))
		require.NoError(t, store.Orders.Update(ctx, o))

		// The caller's snapshot stays current, so a follow-up write succeeds.
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp))
		assert.NoError(t, store.Orders.Update(ctx, o))
	})

	t.Run("should return first pending in insertion order", func(t *testing.T) {
		store := memstore.New()
		assigned := newOrderFixture(t, "order-a")
		require.NoError(t, assigned.Assign("delivery-1"))
		require.NoError(t, store.Orders.Add(ctx, assigned))
		require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, "order-b")))
		require.NoError(t, store.Orders.Add(ctx, newOrderFixture(t, "order-c")))

		pending, err := store.Orders.GetFirstPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, kernel.ID("order-b"), pending.ID())
	})

	t.Run("should return not found for missing order", func(t *testing.T) {
		store := memstore.New()

		_, err := store.Orders.Get(ctx, "nope")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func Test_LocationRepository(t *testing.T) {
	ctx := context.Background()

	sampleAt := func(t *testing.T, orderID string, at time.Time) location.Sample {
		t.Helper()
		point, err := kernel.NewGeoPoint(40.758, -73.9855)
		require.NoError(t, err)
		s, err := location.NewSample(kernel.ID(orderID), "delivery-1", point, at, nil)
		require.NoError(t, err)
		return s
	}

	t.Run("should pick latest by timestamp regardless of append order", func(t *testing.T) {
		store := memstore.New()
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-1", base.Add(2*time.Minute))))
		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-1", base)))
		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-1", base.Add(time.Minute))))

		latest, err := store.Locations.Latest(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, base.Add(2*time.Minute), latest.Timestamp())
	})

	t.Run("should sort history newest first", func(t *testing.T) {
		store := memstore.New()
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-1", base)))
		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-1", base.Add(time.Minute))))
		require.NoError(t, store.Locations.Append(ctx, sampleAt(t, "order-2", base.Add(2*time.Minute))))

		history, err := store.Locations.GetByOrder(ctx, "order-1")
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, base.Add(time.Minute), history[0].Timestamp())
		assert.Equal(t, base, history[1].Timestamp())
	})

	t.Run("should return not found when order has no samples", func(t *testing.T) {
		store := memstore.New()

		_, err := store.Locations.Latest(ctx, "order-1")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func Test_Seed(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, memstore.Seed(ctx, store))

	t.Run("should load demo vendors", func(t *testing.T) {
		vendors, err := store.Vendors.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, vendors, 2)
		assert.Equal(t, "Quick Bites", vendors[0].BusinessName())
	})

	t.Run("should load partners with one offline", func(t *testing.T) {
		available, err := store.Partners.GetAllAvailable(ctx)
		require.NoError(t, err)
		assert.Len(t, available, 2)
	})

	t.Run("should match emails case-insensitively", func(t *testing.T) {
		vendor, err := store.Vendors.GetByEmail(ctx, "QuickBites@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, "vendor-1", vendor.ID().String())

		partner, err := store.Partners.GetByEmail(ctx, "MIKE.RIDER@example.com")
		require.NoError(t, err)
		assert.Equal(t, "delivery-1", partner.ID().String())

		customer, err := store.Customers.GetByEmail(ctx, "John.Doe@Example.com")
		require.NoError(t, err)
		assert.Equal(t, "customer-1", customer.ID().String())
	})

	t.Run("should load orders in demo lifecycle stages", func(t *testing.T) {
		inTransit, err := store.Orders.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, inTransit.Status())
		require.NotNil(t, inTransit.DeliveryPartnerID())
		assert.Equal(t, kernel.ID("delivery-1"), *inTransit.DeliveryPartnerID())

		pending, err := store.Orders.Get(ctx, "order-2")
		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, pending.Status())
		assert.Nil(t, pending.DeliveryPartnerID())
	})

	t.Run("should load a location sample for the in-transit order", func(t *testing.T) {
		latest, err := store.Locations.Latest(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, kernel.ID("delivery-1"), latest.PartnerID())
	})
}
