package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDelivererIsRequired is returned when ReadyForPickup → OutForDelivery is requested
	// as a plain status change. That edge always assigns a deliverer, see AssignDeliverer.
	ErrDelivererIsRequired = errs.NewValueIsRequiredError("delivererId")
)

// Order is the aggregate root of one shopper's purchase and its delivery lifecycle.
//
// Order follows these invariants:
//   - id, shopper, items, delivery address and creation time never change
//   - items are non-empty and totalPrice equals the sum of item subtotals
//   - status only moves along the edges defined in status.go
//   - a deliverer is set exactly once, by AssignDeliverer, together with OutForDelivery
//
// Every status change is recorded as a StatusChanged domain event until
// ClearDomainEvents is called by the application layer.
type Order struct {
	id              kernel.ID
	shopperID       kernel.ID
	delivererID     *kernel.ID
	items           []Item
	status          Status
	totalPrice      kernel.Money
	deliveryAddress string
	createdAt       time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder creates a Pending order with no deliverer and computes its total.
//
// Example:
//
//	apples, _ := order.NewItem(kernel.MustIDFromString("1"), "Organic Apples", kernel.MustMoneyFromString("4.99"), 2)
//	o, err := order.NewOrder(kernel.MustIDFromString("ORD100"), shopperID, []order.Item{apples}, "1 A St", time.Now())
//	// o.Status() == order.Pending, o.TotalPrice().String() == "9.98"
//
// All validation failures are joined into the returned error.
func NewOrder(
	id kernel.ID,
	shopperID kernel.ID,
	items []Item,
	deliveryAddress string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopperID(shopperID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.totalPrice = sumSubtotals(o.items)
	o.record(Unknown, Pending)

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. It re-checks every invariant,
// including the stored total and the status/deliverer consistency, and records no events.
func RestoreOrder(
	id kernel.ID,
	shopperID kernel.ID,
	delivererID *kernel.ID,
	items []Item,
	status Status,
	totalPrice kernel.Money,
	deliveryAddress string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setShopperID(shopperID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		o.setCreatedAt(createdAt),
		o.setStatus(status, delivererID),
	); err != nil {
		return nil, err
	}

	if err := totalPrice.Validate(); err != nil {
		return nil, err
	}
	if expected := sumSubtotals(o.items); !expected.IsEqual(totalPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalPrice is invalid",
			fmt.Errorf("%s does not match item subtotals %s", totalPrice, expected),
		)
	}
	o.totalPrice = totalPrice

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) ShopperID() kernel.ID {
	return o.shopperID
}

// DelivererID returns the assigned deliverer, or nil while unassigned.
func (o *Order) DelivererID() *kernel.ID {
	if o.delivererID == nil {
		return nil
	}
	id := *o.delivererID
	return &id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Transition moves the order to another status along a legal edge.
//
// Returns:
//   - IllegalTransitionError if current → to is not an edge (including self transitions)
//   - ErrDelivererIsRequired for ReadyForPickup → OutForDelivery, which only
//     AssignDeliverer may perform
func (o *Order) Transition(to Status) error {
	if o.status == ReadyForPickup && to == OutForDelivery {
		return ErrDelivererIsRequired
	}

	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.record(o.status, newStatus)
	o.status = newStatus
	return nil
}

// TransitionAs is Transition gated by the party that owns the edge.
func (o *Order) TransitionAs(to Status, actor Actor) error {
	if err := o.status.ValidateActor(to, actor); err != nil {
		return err
	}
	return o.Transition(to)
}

// AssignDeliverer claims a ReadyForPickup order for a deliverer and moves it to
// OutForDelivery in one step.
//
// Returns:
//   - AlreadyAssignedError if a deliverer is already set (checked first, so a second
//     claim on an order that already left ReadyForPickup still reports the claim race)
//   - IllegalTransitionError if the order is not ReadyForPickup
func (o *Order) AssignDeliverer(delivererID kernel.ID) error {
	if err := delivererID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivererId", err)
	}

	if o.delivererID != nil {
		return errs.NewAlreadyAssignedError(o.id.String(), o.delivererID.String())
	}

	newStatus, err := o.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	o.delivererID = &delivererID
	o.record(o.status, newStatus)
	o.status = newStatus
	return nil
}

// Cancel cancels a Pending order.
func (o *Order) Cancel() error {
	return o.Transition(Cancelled)
}

// DomainEvents returns the status changes recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops recorded events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(from, to Status) {
	o.events = append(o.events, newStatusChanged(o, from, to))
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	o.id = id
	return nil
}

func (o *Order) setShopperID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopperId", err)
	}
	o.shopperID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", idx), err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}

func (o *Order) setStatus(status Status, delivererID *kernel.ID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveDeliverer(delivererID != nil); err != nil {
		return err
	}
	if delivererID != nil {
		if err := delivererID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("delivererId", err)
		}
		id := *delivererID
		o.delivererID = &id
	}
	o.status = status
	return nil
}

func sumSubtotals(items []Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
