package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/adapters/out/memstore"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
	"tracker/internal/jobs"
)

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func Test_JobManager(t *testing.T) {
	t.Run("should dispatch the pending order within a tick or two", func(t *testing.T) {
		ctx := context.Background()
		store := memstore.New()
		require.NoError(t, memstore.Seed(ctx, store))

		dispatch := commands.NewDispatchPartnerCommandHandler(
			store.Orders, store.Partners, ports.NopPublisher{})
		recorder := commands.NewRecordLocationCommandHandler(
			store.Locations, store.Orders, store.Partners, ports.NopPublisher{})
		statuses := commands.NewChangeOrderStatusCommandHandler(store.Orders, ports.NopPublisher{})
		movement := commands.NewSimulateMovementCommandHandler(
			store.Orders, store.Partners, recorder, statuses)

		manager := jobs.NewJobManager(dispatch, movement, false, slog.Default())
		require.NoError(t, manager.StartAll())
		defer manager.StopAll()

		waitFor(t, func() bool {
			o, err := store.Orders.Get(ctx, "order-2")
			require.NoError(t, err)
			return o.Status() == order.StatusAssigned
		})
	})

	t.Run("should move deliveries when simulation is on", func(t *testing.T) {
		ctx := context.Background()
		store := memstore.New()
		require.NoError(t, memstore.Seed(ctx, store))

		dispatch := commands.NewDispatchPartnerCommandHandler(
			store.Orders, store.Partners, ports.NopPublisher{})
		recorder := commands.NewRecordLocationCommandHandler(
			store.Locations, store.Orders, store.Partners, ports.NopPublisher{})
		statuses := commands.NewChangeOrderStatusCommandHandler(store.Orders, ports.NopPublisher{})
		movement := commands.NewSimulateMovementCommandHandler(
			store.Orders, store.Partners, recorder, statuses)

		manager := jobs.NewJobManager(dispatch, movement, true, slog.Default())
		require.NoError(t, manager.StartAll())
		defer manager.StopAll()

		// The seeded picked up order flips to in transit on its first step.
		waitFor(t, func() bool {
			o, err := store.Orders.Get(ctx, "order-3")
			require.NoError(t, err)
			return o.Status() == order.StatusInTransit
		})

		trail, err := store.Locations.GetByOrder(ctx, "order-3")
		require.NoError(t, err)
		assert.NotEmpty(t, trail)
	})
}
