package order_test

import (
	"testing"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewID(), "Margherita Pizza", 1, 18.99, "Fresh mozzarella, tomato sauce, basil")
	require.NoError(t, err)
	return []order.Item{item}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, err := kernel.NewGeoPoint(40.7589, -73.9851)
	require.NoError(t, err)
	delivery, err := kernel.NewGeoPoint(40.7505, -73.9934)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewID(),
		kernel.ID("vendor-1"),
		kernel.ID("customer-1"),
		testItems(t),
		"123 Food Street, Downtown",
		"789 Residential Lane, Suburb",
		pickup,
		delivery,
		18.99,
		"John Doe",
		"+1-555-0301",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		o := testOrder(t)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.DeliveryPartnerID())
		assert.True(t, o.CreatedAt().IsZero(), "timestamps are stamped by the store")
	})

	t.Run("should reject missing vendor", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		delivery, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewID(), "", "customer-1", testItems(t),
			"a", "b", pickup, delivery, 10, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		delivery, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewID(), "vendor-1", "customer-1", nil,
			"a", "b", pickup, delivery, 10, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		delivery, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewID(), "vendor-1", "customer-1", testItems(t),
			"a", "b", pickup, delivery, -1, "", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unvalidated coordinates", func(t *testing.T) {
		var zero kernel.GeoPoint
		delivery, _ := kernel.NewGeoPoint(2, 2)

		_, err := order.NewOrder(kernel.NewID(), "vendor-1", "customer-1", testItems(t),
			"a", "b", zero, delivery, 10, "", "")

		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewID(), "Fries", 0, 6.99, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewID(), "Fries", 1, -0.01, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewID(), "Free Sample", 1, 0, "")

		require.NoError(t, err)
		assert.Equal(t, 0.0, item.Price())
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("should assign partner to pending order", func(t *testing.T) {
		o := testOrder(t)

		require.NoError(t, o.Assign("delivery-1"))

		assert.Equal(t, order.StatusAssigned, o.Status())
		require.NotNil(t, o.DeliveryPartnerID())
		assert.Equal(t, kernel.ID("delivery-1"), *o.DeliveryPartnerID())
	})

	t.Run("should allow reassignment", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Assign("delivery-1"))

		require.NoError(t, o.Assign("delivery-2"))

		assert.Equal(t, kernel.ID("delivery-2"), *o.DeliveryPartnerID())
		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("should reject assignment of delivered order", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Assign("delivery-1"))
		require.NoError(t, o.ChangeStatus(order.StatusPickedUp))
		require.NoError(t, o.ChangeStatus(order.StatusInTransit))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered))

		err := o.Assign("delivery-2")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the full lifecycle", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Assign("delivery-1"))

		require.NoError(t, o.ChangeStatus(order.StatusPickedUp))
		require.NoError(t, o.ChangeStatus(order.StatusInTransit))
		require.NoError(t, o.ChangeStatus(order.StatusDelivered))

		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should reject assigned without partner", func(t *testing.T) {
		o := testOrder(t)

		err := o.ChangeStatus(order.StatusAssigned)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject transitions out of terminal status", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled))

		err := o.ChangeStatus(order.StatusPending)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}

func TestOrder_Touch(t *testing.T) {
	t.Run("should set createdAt and updatedAt together on first touch", func(t *testing.T) {
		o := testOrder(t)
		now := time.Now().UTC()

		o.Touch(now)

		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should advance updatedAt only", func(t *testing.T) {
		o := testOrder(t)
		created := time.Now().UTC()
		o.Touch(created)

		later := created.Add(5 * time.Minute)
		o.Touch(later)

		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("should never move updatedAt backwards", func(t *testing.T) {
		o := testOrder(t)
		created := time.Now().UTC()
		o.Touch(created)
		o.Touch(created.Add(time.Minute))

		o.Touch(created.Add(-time.Hour))

		assert.Equal(t, created.Add(time.Minute), o.UpdatedAt())
		assert.False(t, o.UpdatedAt().Before(o.CreatedAt()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with status and timestamps", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(40.7589, -73.9851)
		delivery, _ := kernel.NewGeoPoint(40.7505, -73.9934)
		partnerID := kernel.ID("delivery-1")
		created := time.Now().UTC().Add(-30 * time.Minute)
		updated := time.Now().UTC()

		o, err := order.RestoreOrder("order-1", "vendor-1", "customer-1", &partnerID,
			testItems(t), order.StatusInTransit,
			"123 Food Street, Downtown", "789 Residential Lane, Suburb",
			pickup, delivery, 34.97, "John Doe", "+1-555-0301",
			created, updated, nil)

		require.NoError(t, err)
		assert.Equal(t, order.StatusInTransit, o.Status())
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("should reject updatedAt before createdAt", func(t *testing.T) {
		pickup, _ := kernel.NewGeoPoint(1, 1)
		delivery, _ := kernel.NewGeoPoint(2, 2)
		created := time.Now().UTC()

		_, err := order.RestoreOrder("order-1", "vendor-1", "customer-1", nil,
			testItems(t), order.StatusPending, "a", "b", pickup, delivery,
			10, "", "", created, created.Add(-time.Second), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Clone(t *testing.T) {
	t.Run("should produce an independent snapshot", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Assign("delivery-1"))

		snapshot := o.Clone()
		require.NoError(t, o.Assign("delivery-2"))

		assert.Equal(t, kernel.ID("delivery-1"), *snapshot.DeliveryPartnerID())
		assert.Equal(t, kernel.ID("delivery-2"), *o.DeliveryPartnerID())
	})
}
