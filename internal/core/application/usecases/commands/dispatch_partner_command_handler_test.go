package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/adapters/out/memstore"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
)

func Test_DispatchPartnerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	cmd := commands.NewDispatchPartnerCommand()

	t.Run("should assign the oldest pending order to the best partner", func(t *testing.T) {
		store := seededStore(t)
		publisher := &capturePublisher{}
		handler := commands.NewDispatchPartnerCommandHandler(store.Orders, store.Partners, publisher)

		require.NoError(t, handler.Handle(ctx, cmd))

		// Sarah (delivery-2) outrates Mike and Alex is offline.
		assigned, err := store.Orders.Get(ctx, "order-2")
		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, assigned.Status())
		require.NotNil(t, assigned.DeliveryPartnerID())
		assert.Equal(t, kernel.ID("delivery-2"), *assigned.DeliveryPartnerID())

		events := publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, ports.EventOrderAssigned, events[0].Kind)
	})

	t.Run("should report an idle round when nothing is pending", func(t *testing.T) {
		store := seededStore(t)
		handler := commands.NewDispatchPartnerCommandHandler(store.Orders, store.Partners, ports.NopPublisher{})
		require.NoError(t, handler.Handle(ctx, cmd))

		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrNoPendingOrder)
	})

	t.Run("should report when every partner is offline", func(t *testing.T) {
		store := seededStore(t)
		for _, id := range []string{"delivery-1", "delivery-2"} {
			offline, err := commands.NewSetPartnerAvailabilityCommand(kernel.ID(id), false)
			require.NoError(t, err)
			require.NoError(t, commands.NewSetPartnerAvailabilityCommandHandler(store.Partners).Handle(ctx, offline))
		}
		handler := commands.NewDispatchPartnerCommandHandler(store.Orders, store.Partners, ports.NopPublisher{})

		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrNoAvailablePartners)
	})

	t.Run("should report an idle round on an empty store", func(t *testing.T) {
		store := memstore.New()
		handler := commands.NewDispatchPartnerCommandHandler(store.Orders, store.Partners, ports.NopPublisher{})

		err := handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, commands.ErrNoPendingOrder)
	})
}
