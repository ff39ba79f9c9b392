package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies a status change through the conditional
// update path.
//
// Example:
//
//	cmd, _ := NewTransitionOrderCommand(orderID, order.Confirmed)
//	updated, err := handler.Handle(ctx, cmd.WithActor(order.Deliverer))
//	// errs.ErrIllegalTransition, errs.ErrActorNotPermitted or errs.ErrObjectNotFound on failure
type TransitionOrderCommandHandler struct {
	mutator orderMutator
}

func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, publisher, logger),
	}
}

// Handle returns the order in its new status. A transition to OutForDelivery with a
// deliverer id assigns that deliverer; without one it fails with order.ErrDelivererIsRequired.
// Unlike AssignDelivererCommandHandler, a repeated pickup is an illegal transition.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.apply(ctx, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Target() == order.OutForDelivery && cmd.DelivererID() != nil {
			if o.Status() != order.ReadyForPickup {
				return errs.NewIllegalTransitionError(o.Status(), cmd.Target())
			}
			return assign(o, *cmd.DelivererID(), cmd.Actor())
		}

		if cmd.Actor() == order.UnknownActor {
			return o.Transition(cmd.Target())
		}
		return o.TransitionAs(cmd.Target(), cmd.Actor())
	})
}
