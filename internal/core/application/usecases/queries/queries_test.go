package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/adapters/out/memstore"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
)

func seededStore(t *testing.T) *memstore.Store {
	t.Helper()
	store := memstore.New()
	require.NoError(t, memstore.Seed(context.Background(), store))
	return store
}

func Test_GetVendorsQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	handler := queries.NewGetVendorsQueryHandler(store.Vendors)

	vendors, err := handler.Handle(ctx, queries.NewGetVendorsQuery())

	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, kernel.ID("vendor-1"), vendors[0].ID())
	assert.Equal(t, kernel.ID("vendor-2"), vendors[1].ID())
}

func Test_GetPartnersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	handler := queries.NewGetPartnersQueryHandler(store.Partners)

	t.Run("should list every partner", func(t *testing.T) {
		partners, err := handler.Handle(ctx, queries.NewGetPartnersQuery(false))

		require.NoError(t, err)
		assert.Len(t, partners, 3)
	})

	t.Run("should filter to available partners", func(t *testing.T) {
		partners, err := handler.Handle(ctx, queries.NewGetPartnersQuery(true))

		require.NoError(t, err)
		require.Len(t, partners, 2)
		for _, p := range partners {
			assert.True(t, p.IsAvailable())
		}
	})
}

func Test_GetVendorOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	handler := queries.NewGetVendorOrdersQueryHandler(store.Orders)

	t.Run("should list the vendor's orders in creation order", func(t *testing.T) {
		query, err := queries.NewGetVendorOrdersQuery("vendor-1")
		require.NoError(t, err)

		orders, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, kernel.ID("order-1"), orders[0].ID())
		assert.Equal(t, kernel.ID("order-2"), orders[1].ID())
	})

	t.Run("should return an empty list for an unknown vendor", func(t *testing.T) {
		query, err := queries.NewGetVendorOrdersQuery("vendor-999")
		require.NoError(t, err)

		orders, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func Test_GetPartnerOrdersQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	handler := queries.NewGetPartnerOrdersQueryHandler(store.Orders)

	query, err := queries.NewGetPartnerOrdersQuery("delivery-2")
	require.NoError(t, err)

	orders, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, kernel.ID("order-3"), orders[0].ID())
}

func Test_TrackOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	handler := queries.NewTrackOrderQueryHandler(store.Orders, store.Locations)

	t.Run("should return the order with its latest location", func(t *testing.T) {
		query, err := queries.NewTrackOrderQuery("order-1")
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID("order-1"), view.Order.ID())
		require.NotNil(t, view.LastLocation)
		assert.Equal(t, kernel.ID("delivery-1"), view.LastLocation.PartnerID())
	})

	t.Run("should return the order without location when none reported", func(t *testing.T) {
		query, err := queries.NewTrackOrderQuery("order-2")
		require.NoError(t, err)

		view, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID("order-2"), view.Order.ID())
		assert.Nil(t, view.LastLocation)
	})

	t.Run("should return not found for an unknown order", func(t *testing.T) {
		query, err := queries.NewTrackOrderQuery("order-999")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
