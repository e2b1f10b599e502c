package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/order"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"
)

func Test_ChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	newCmd := func(t *testing.T, orderID string, status order.Status) commands.ChangeOrderStatusCommand {
		t.Helper()
		cmd, err := commands.NewChangeOrderStatusCommand(kernel.ID(orderID), status)
		require.NoError(t, err)
		return cmd
	}

	t.Run("should apply a legal transition and broadcast it", func(t *testing.T) {
		store := seededStore(t)
		publisher := &capturePublisher{}
		handler := commands.NewChangeOrderStatusCommandHandler(store.Orders, publisher)

		require.NoError(t, handler.Handle(ctx, newCmd(t, "order-1", order.StatusDelivered)))

		delivered, err := store.Orders.Get(ctx, "order-1")
		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, delivered.Status())

		events := publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, ports.EventOrderStatusUpdate, events[0].Kind)
	})

	t.Run("should reject an illegal transition without persisting", func(t *testing.T) {
		store := seededStore(t)
		publisher := &capturePublisher{}
		handler := commands.NewChangeOrderStatusCommandHandler(store.Orders, publisher)

		err := handler.Handle(ctx, newCmd(t, "order-2", order.StatusDelivered))

		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
		unchanged, getErr := store.Orders.Get(ctx, "order-2")
		require.NoError(t, getErr)
		assert.Equal(t, order.StatusPending, unchanged.Status())
		assert.Empty(t, publisher.Events())
	})

	t.Run("should reject any move out of a terminal status", func(t *testing.T) {
		store := seededStore(t)
		handler := commands.NewChangeOrderStatusCommandHandler(store.Orders, ports.NopPublisher{})
		require.NoError(t, handler.Handle(ctx, newCmd(t, "order-1", order.StatusDelivered)))

		err := handler.Handle(ctx, newCmd(t, "order-1", order.StatusCancelled))

		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})

	t.Run("should reject an unknown status at command construction", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand("order-1", order.Status("shipped"))

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return not found for unknown order", func(t *testing.T) {
		store := seededStore(t)
		handler := commands.NewChangeOrderStatusCommandHandler(store.Orders, ports.NopPublisher{})

		err := handler.Handle(ctx, newCmd(t, "order-999", order.StatusCancelled))

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
