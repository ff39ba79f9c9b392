package commands_test

import (
	"context"
	"testing"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransitionCommand(t *testing.T, id string, to order.Status) commands.TransitionOrderCommand {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(kernel.MustIDFromString(id), to)
	require.NoError(t, err)
	return cmd
}

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("should create a command without actor", func(t *testing.T) {
		cmd := newTransitionCommand(t, "ORD1", order.Confirmed)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.Confirmed, cmd.Target())
		assert.Equal(t, order.UnknownActor, cmd.Actor())
		assert.Nil(t, cmd.DelivererID())
	})

	t.Run("should carry actor and deliverer", func(t *testing.T) {
		cmd := newTransitionCommand(t, "ORD1", order.OutForDelivery).
			WithActor(order.Deliverer).
			WithDeliverer(kernel.MustIDFromString("d1"))

		assert.Equal(t, order.Deliverer, cmd.Actor())
		require.NotNil(t, cmd.DelivererID())
		assert.Equal(t, "d1", cmd.DelivererID().String())
	})

	t.Run("should reject an unknown target", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(kernel.MustIDFromString("ORD1"), order.Unknown)

		require.ErrorIs(t, err, errs.ErrValidation)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTransitionOrderCommandIsNotConstructed)
	})
}

func TestTransitionOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should walk the full lifecycle", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newPendingOrder("ORD100")))
		publisher := &recordingPublisher{}
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), publisher, nil)

		for _, to := range []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup} {
			updated, err := h.Handle(ctx, newTransitionCommand(t, "ORD100", to))
			require.NoError(t, err)
			assert.Equal(t, to, updated.Status())
		}

		claimed, err := h.Handle(ctx, newTransitionCommand(t, "ORD100", order.OutForDelivery).
			WithDeliverer(kernel.MustIDFromString("d1")))
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, claimed.Status())
		assert.Equal(t, "d1", claimed.DelivererID().String())

		delivered, err := h.Handle(ctx, newTransitionCommand(t, "ORD100", order.Delivered))
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, delivered.Status())
		assert.Equal(t, "d1", delivered.DelivererID().String())

		assert.Equal(t, []string{
			"PENDING->CONFIRMED",
			"CONFIRMED->PREPARING",
			"PREPARING->READY_FOR_PICKUP",
			"READY_FOR_PICKUP->OUT_FOR_DELIVERY",
			"OUT_FOR_DELIVERY->DELIVERED",
		}, publisher.transitions())
	})

	t.Run("should reject illegal transitions and keep the order", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newPendingOrder("ORD1")))
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), nil, nil)

		_, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Delivered))
		require.ErrorIs(t, err, errs.ErrIllegalTransition)

		_, err = h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Pending))
		require.ErrorIs(t, err, errs.ErrIllegalTransition)

		stored, err := store.Get(ctx, kernel.MustIDFromString("ORD1"))
		require.NoError(t, err)
		assert.Equal(t, order.Pending, stored.Status())
	})

	t.Run("should require a deliverer for pickup", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newReadyOrder("ORD1")))
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), nil, nil)

		_, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.OutForDelivery))
		require.ErrorIs(t, err, order.ErrDelivererIsRequired)
	})

	t.Run("should reject repeating pickup", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newReadyOrder("ORD100")))
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), nil, nil)
		pickup := newTransitionCommand(t, "ORD100", order.OutForDelivery).WithDeliverer(kernel.MustIDFromString("d1"))

		_, err := h.Handle(ctx, pickup)
		require.NoError(t, err)

		_, err = h.Handle(ctx, pickup)
		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.NotErrorIs(t, err, errs.ErrAlreadyAssigned)

		_, err = h.Handle(ctx, newTransitionCommand(t, "ORD100", order.Delivered))
		require.NoError(t, err)

		_, err = h.Handle(ctx, pickup.WithDeliverer(kernel.MustIDFromString("d2")))
		require.ErrorIs(t, err, errs.ErrIllegalTransition)

		stored, err := store.Get(ctx, kernel.MustIDFromString("ORD100"))
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, stored.Status())
		assert.Equal(t, "d1", stored.DelivererID().String())
	})

	t.Run("should gate by actor", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newPendingOrder("ORD1")))
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), nil, nil)

		_, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Confirmed).WithActor(order.Shopper))
		require.ErrorIs(t, err, errs.ErrActorNotPermitted)

		_, err = h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Cancelled).WithActor(order.Deliverer))
		require.ErrorIs(t, err, errs.ErrActorNotPermitted)

		updated, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Confirmed).WithActor(order.Deliverer))
		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, updated.Status())
	})

	t.Run("should publish detached from a cancelled caller", func(t *testing.T) {
		store := memory.NewOrderStore()
		require.NoError(t, store.Add(ctx, newPendingOrder("ORD1")))
		publisher := &contextPublisher{}
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(store), publisher, nil)

		callerCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := h.Handle(callerCtx, newTransitionCommand(t, "ORD1", order.Confirmed))

		require.NoError(t, err)
		assert.NoError(t, publisher.err)
		assert.True(t, publisher.deadline)
	})

	t.Run("should report missing orders", func(t *testing.T) {
		h := commands.NewTransitionOrderCommandHandler(newMemoryUoWFactory(memory.NewOrderStore()), nil, nil)

		_, err := h.Handle(ctx, newTransitionCommand(t, "nope", order.Confirmed))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestTransitionOrderCommandHandler_Handle_StaleRetry(t *testing.T) {
	ctx := t.Context()

	t.Run("should re-read once after losing a race", func(t *testing.T) {
		repo := new(MockOrderRepository)
		first, second := new(MockOrderUoW), new(MockOrderUoW)
		for _, uow := range []*MockOrderUoW{first, second} {
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
		}
		second.On("Commit", ctx).Return(nil).Once()

		repo.On("Get", ctx, kernel.MustIDFromString("ORD1")).Return(newPendingOrder("ORD1"), nil).Once()
		repo.On("Get", ctx, kernel.MustIDFromString("ORD1")).Return(newPendingOrder("ORD1"), nil).Once()
		pre := ports.Precondition{Status: order.Pending, DelivererUnset: true}
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order"), pre).Return(errs.ErrStaleObject).Once()
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order"), pre).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(first).Once()
		factory.On("Create").Return(second).Once()

		h := commands.NewTransitionOrderCommandHandler(factory, nil, nil)
		updated, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Confirmed))

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, updated.Status())
		repo.AssertExpectations(t)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("should give up after the retry", func(t *testing.T) {
		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Twice()
		uow.On("OrderRepository").Return(repo).Twice()
		uow.On("Rollback", ctx).Return(nil).Twice()

		repo.On("Get", ctx, mock.Anything).Return(newPendingOrder("ORD1"), nil).Once()
		repo.On("Get", ctx, mock.Anything).Return(newPendingOrder("ORD1"), nil).Once()
		repo.On("Update", ctx, mock.Anything, mock.Anything).Return(errs.ErrStaleObject).Twice()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Twice()

		h := commands.NewTransitionOrderCommandHandler(factory, nil, nil)
		_, err := h.Handle(ctx, newTransitionCommand(t, "ORD1", order.Confirmed))

		require.ErrorIs(t, err, errs.ErrStaleObject)
		repo.AssertExpectations(t)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
