package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrAssignDelivererCommandIsNotConstructed = errors.New(
	"AssignDelivererCommand must be created via NewAssignDelivererCommand constructor",
)

// AssignDelivererCommand is a deliverer claiming a READY_FOR_PICKUP order. Without
// an explicit actor the caller is taken to be a deliverer.
//
// Example:
//
//	cmd, err := NewAssignDelivererCommand(orderID, delivererID)
//	if err != nil {
//	    return err
//	}
//	claimed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrAlreadyAssigned) {
//	    // somebody else was faster
//	}
type AssignDelivererCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	delivererID kernel.ID
	actor       order.Actor

	guard guard.ConstructorGuard
}

func NewAssignDelivererCommand(orderID, delivererID kernel.ID) (AssignDelivererCommand, error) {
	cmd := AssignDelivererCommand{
		actor: order.Deliverer,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDelivererID(delivererID),
	); err != nil {
		return AssignDelivererCommand{}, errs.NewValidationErrorWithCause("assignment", err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDelivererCommand) Validate() error {
	return c.guard.Validate(ErrAssignDelivererCommandIsNotConstructed)
}

// WithActor returns a copy of the command gated by the given actor.
// UnknownActor keeps the deliverer default.
func (c AssignDelivererCommand) WithActor(actor order.Actor) AssignDelivererCommand {
	if actor != order.UnknownActor {
		c.actor = actor
	}
	return c
}

func (c AssignDelivererCommand) Actor() order.Actor {
	return c.actor
}

func (c AssignDelivererCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AssignDelivererCommand) DelivererID() kernel.ID {
	return c.delivererID
}

func (c *AssignDelivererCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *AssignDelivererCommand) setDelivererID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivererId", err)
	}
	c.delivererID = id
	return nil
}
