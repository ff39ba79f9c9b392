package commands

import (
	"errors"
	"strings"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a shopper placing a new order.
//
// Example:
//
//	apples, _ := order.NewItem(productID, "Organic Apples", kernel.MustMoneyFromString("4.99"), 2)
//	cmd, err := NewCreateOrderCommand(kernel.NewID(), shopperID, []order.Item{apples}, "1 A St", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.ID
	shopperID       kernel.ID
	items           []order.Item
	deliveryAddress string
	placedAt        time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Domain invariants are checked
// again by order.NewOrder. Every failure is reported as an errs.ValidationError.
func NewCreateOrderCommand(
	orderID kernel.ID,
	shopperID kernel.ID,
	items []order.Item,
	deliveryAddress string,
	placedAt time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopperID(shopperID),
		cmd.setItems(items),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setPlacedAt(placedAt),
	); err != nil {
		return CreateOrderCommand{}, errs.NewValidationErrorWithCause("order", err)
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c CreateOrderCommand) ShopperID() kernel.ID {
	return c.shopperID
}

// Items returns a copy of the requested order lines.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c CreateOrderCommand) PlacedAt() time.Time {
	return c.placedAt
}

func (c *CreateOrderCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setShopperID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopperId", err)
	}
	c.shopperID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		placedAt = time.Now()
	}
	c.placedAt = placedAt.UTC()
	return nil
}
