package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// staleRetries is how many times a mutation is re-applied after losing a
// compare-and-swap race. One re-read is enough to turn the race into the
// domain error the loser should see.
const staleRetries = 1

// publishTimeout bounds event publishing after commit. Publishing runs detached
// from the caller's context so a disconnected client does not drop events.
const publishTimeout = 5 * time.Second

// orderMutator loads an order, applies a domain operation and writes it back with a
// precondition pinning the state the operation was decided on.
type orderMutator struct {
	uowFactory OrderUoWFactory
	events     eventDispatcher
}

func newOrderMutator(uowFactory OrderUoWFactory, publisher ports.EventPublisher, logger *slog.Logger) orderMutator {
	return orderMutator{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

func (m orderMutator) apply(ctx context.Context, id kernel.ID, mutate func(*order.Order) error) (*order.Order, error) {
	for attempt := 0; ; attempt++ {
		o, err := m.applyOnce(ctx, id, mutate)
		if errors.Is(err, errs.ErrStaleObject) && attempt < staleRetries {
			continue
		}
		if err != nil {
			return nil, err
		}

		m.events.dispatch(ctx, o)
		return o, nil
	}
}

func (m orderMutator) applyOnce(ctx context.Context, id kernel.ID, mutate func(*order.Order) error) (*order.Order, error) {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	precondition := ports.Precondition{
		Status:         o.Status(),
		DelivererUnset: o.DelivererID() == nil,
	}

	if err = mutate(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o, precondition); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// eventDispatcher publishes the events recorded on an aggregate after its
// transaction committed. Publishing is best effort: the state change is already
// durable, so a failure is logged and the events are dropped.
type eventDispatcher struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func newEventDispatcher(publisher ports.EventPublisher, logger *slog.Logger) eventDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return eventDispatcher{
		publisher: publisher,
		logger:    logger.With("component", "order_events"),
	}
}

func (d eventDispatcher) dispatch(ctx context.Context, o *order.Order) {
	events := o.DomainEvents()
	o.ClearDomainEvents()

	if d.publisher == nil || len(events) == 0 {
		return
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(publishCtx, events...); err != nil {
		d.logger.ErrorContext(ctx, "Failed to publish order events",
			"order_id", o.ID().String(),
			"events", len(events),
			"error", err,
		)
	}
}
