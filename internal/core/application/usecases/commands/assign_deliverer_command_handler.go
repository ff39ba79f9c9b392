package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// AssignDelivererCommandHandler claims an order for a deliverer.
//
// Two deliverers racing for the same order both read it as unassigned, but only one
// conditional update can match "status = READY_FOR_PICKUP AND deliverer_id IS NULL".
// The loser re-reads the order and gets errs.AlreadyAssignedError naming the winner.
type AssignDelivererCommandHandler struct {
	mutator orderMutator
}

func NewAssignDelivererCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignDelivererCommandHandler {
	return AssignDelivererCommandHandler{
		mutator: newOrderMutator(uowFactory, publisher, logger),
	}
}

// Handle returns the order in OutForDelivery with the deliverer set.
func (h *AssignDelivererCommandHandler) Handle(ctx context.Context, cmd AssignDelivererCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.apply(ctx, cmd.OrderID(), func(o *order.Order) error {
		return assign(o, cmd.DelivererID(), cmd.Actor())
	})
}

// assign runs the assignment rule, gated by actor unless actor is UnknownActor.
// An existing assignment is reported before the actor check.
func assign(o *order.Order, delivererID kernel.ID, actor order.Actor) error {
	if actor != order.UnknownActor && o.DelivererID() == nil {
		if err := o.Status().ValidateActor(order.OutForDelivery, actor); err != nil {
			return err
		}
	}
	return o.AssignDeliverer(delivererID)
}
