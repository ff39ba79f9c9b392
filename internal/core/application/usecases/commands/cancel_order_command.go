package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a PENDING order. The actor is optional; cancelling is
// a shopper operation.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ID
	actor   order.Actor

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID kernel.ID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		actor: order.UnknownActor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, errs.NewValidationErrorWithCause("cancellation", err)
	}

	return cmd, nil
}

// WithActor returns a copy of the command gated by the given actor.
func (c CancelOrderCommand) WithActor(actor order.Actor) CancelOrderCommand {
	c.actor = actor
	return c
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CancelOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c *CancelOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}
