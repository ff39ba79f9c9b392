package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// CancelOrderCommandHandler moves a PENDING order to CANCELLED. Any other status
// fails with errs.IllegalTransitionError and leaves the order untouched.
type CancelOrderCommandHandler struct {
	mutator orderMutator
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, publisher, logger),
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.mutator.apply(ctx, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Actor() == order.UnknownActor {
			return o.Cancel()
		}
		return o.TransitionAs(order.Cancelled, cmd.Actor())
	})
}
