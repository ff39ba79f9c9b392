package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order to a target status.
//
// The acting party is optional. When set, the edge must be owned by that actor
// (see order.Status.Owner). A deliverer id is required for the
// READY_FOR_PICKUP → OUT_FOR_DELIVERY edge, which is carried out as an assignment.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.ID
	target      order.Status
	actor       order.Actor
	delivererID *kernel.ID

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request without actor gating.
func NewTransitionOrderCommand(orderID kernel.ID, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		actor: order.UnknownActor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, errs.NewValidationErrorWithCause("transition", err)
	}

	return cmd, nil
}

// WithActor returns a copy of the command gated by the given actor.
func (c TransitionOrderCommand) WithActor(actor order.Actor) TransitionOrderCommand {
	c.actor = actor
	return c
}

// WithDeliverer returns a copy of the command carrying the deliverer who claims the order.
func (c TransitionOrderCommand) WithDeliverer(delivererID kernel.ID) TransitionOrderCommand {
	c.delivererID = &delivererID
	return c
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns the acting party, or order.UnknownActor when the command is not gated.
func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

// DelivererID returns the claiming deliverer, or nil.
func (c TransitionOrderCommand) DelivererID() *kernel.ID {
	return c.delivererID
}

func (c *TransitionOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
