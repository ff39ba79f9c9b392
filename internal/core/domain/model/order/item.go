package order

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one product line of an order. Product id, name and price are a snapshot
// taken at purchase time; later catalog changes never touch existing orders.
type Item struct { //nolint:recvcheck //using for validation
	productID       kernel.ID
	productName     string
	priceAtPurchase kernel.Money
	quantity        int

	guard guard.ConstructorGuard
}

// NewItem validates and creates an order line. Quantity must be at least one.
func NewItem(productID kernel.ID, productName string, priceAtPurchase kernel.Money, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setPriceAtPurchase(priceAtPurchase),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.ID {
	return i.productID
}

func (i Item) ProductName() string {
	return i.productName
}

func (i Item) PriceAtPurchase() kernel.Money {
	return i.priceAtPurchase
}

func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal is priceAtPurchase × quantity, computed exactly.
func (i Item) Subtotal() kernel.Money {
	return i.priceAtPurchase.Mul(i.quantity)
}

func (i *Item) setProductID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setPriceAtPurchase(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("priceAtPurchase", err)
	}
	i.priceAtPurchase = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
