package order_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newItem(t *testing.T, productID, name, price string, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.MustIDFromString(productID), name, kernel.MustMoneyFromString(price), quantity)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.MustIDFromString("ORD100"),
		kernel.MustIDFromString("shopper1"),
		[]order.Item{newItem(t, "1", "Organic Apples", "4.99", 2)},
		"1 A St",
		createdAt,
	)
	require.NoError(t, err)
	return o
}

func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	path := []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup}
	for _, next := range path {
		if o.Status() == target {
			return
		}
		require.NoError(t, o.Transition(next))
	}
	if target == order.OutForDelivery || target == order.Delivered {
		require.NoError(t, o.AssignDeliverer(kernel.MustIDFromString("d1")))
	}
	if target == order.Delivered {
		require.NoError(t, o.Transition(order.Delivered))
	}
	require.Equal(t, target, o.Status())
}

func TestNewItem(t *testing.T) {
	t.Run("should compute exact subtotal", func(t *testing.T) {
		item := newItem(t, "9", "Greek Yogurt", "0.33", 3)

		assert.Equal(t, "0.99", item.Subtotal().String())
		assert.Equal(t, "Greek Yogurt", item.ProductName())
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("should reject zero and negative quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.MustIDFromString("1"), "Apple", kernel.MustMoneyFromString("5"), quantity)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not greater than 0")
		}
	})

	t.Run("should accept a free sample", func(t *testing.T) {
		item := newItem(t, "1", "Free Sample", "0", 5)
		assert.Equal(t, "0.00", item.Subtotal().String())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := order.NewItem(kernel.ID{}, " ", kernel.Money{}, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "productName")
		assert.Contains(t, err.Error(), "priceAtPurchase")
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("zero value item is not constructed", func(t *testing.T) {
		require.ErrorIs(t, order.Item{}.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with computed total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "ORD100", o.ID().String())
		assert.Equal(t, "shopper1", o.ShopperID().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DelivererID())
		assert.Equal(t, "9.98", o.TotalPrice().String())
		assert.Equal(t, "1 A St", o.DeliveryAddress())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("total equals the sum of subtotals", func(t *testing.T) {
		items := []order.Item{
			newItem(t, "2", "Whole Milk", "3.49", 1),
			newItem(t, "3", "Sourdough Bread", "5.99", 1),
			newItem(t, "9", "Greek Yogurt", "0.33", 3),
		}
		o, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString("shopper2"), items, "456 Oak Ave", createdAt)
		require.NoError(t, err)

		sum := kernel.ZeroMoney()
		for _, item := range o.Items() {
			sum = sum.Add(item.Subtotal())
		}
		assert.True(t, sum.IsEqual(o.TotalPrice()))
		assert.Equal(t, "10.47", o.TotalPrice().String())
	})

	t.Run("should record a creation event", func(t *testing.T) {
		o := newPendingOrder(t)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.True(t, events[0].IsCreation())
		assert.Equal(t, "ORD100", events[0].OrderID)

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString("s"), nil, "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with blank address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString("s"),
			[]order.Item{newItem(t, "1", "Apple", "1", 1)}, "   ", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "deliveryAddress")
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString("s"),
			[]order.Item{{}}, "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "items[0]")
		assert.Contains(t, err.Error(), "Item must be created via NewItem")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID{}, kernel.ID{}, nil, "", time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "shopperId")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "deliveryAddress")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("items are copied on the way in and out", func(t *testing.T) {
		items := []order.Item{newItem(t, "1", "Apple", "1", 1)}
		o, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString("s"), items, "1 A St", createdAt)
		require.NoError(t, err)

		items[0] = newItem(t, "2", "Pear", "100", 1)
		returned := o.Items()
		returned[0] = newItem(t, "3", "Plum", "100", 1)

		assert.Equal(t, "Apple", o.Items()[0].ProductName())
		assert.Equal(t, "1.00", o.TotalPrice().String())
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Transition(t *testing.T) {
	t.Run("should walk the preparation path", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Transition(order.Confirmed))
		require.NoError(t, o.Transition(order.Preparing))
		require.NoError(t, o.Transition(order.ReadyForPickup))

		assert.Equal(t, order.ReadyForPickup, o.Status())
		require.ErrorIs(t, o.Transition(order.Pending), errs.ErrIllegalTransition)
	})

	t.Run("should reject repeating a transition", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Transition(order.Confirmed))
		err := o.Transition(order.Confirmed)

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject self transition", func(t *testing.T) {
		o := newPendingOrder(t)
		require.ErrorIs(t, o.Transition(order.Pending), errs.ErrIllegalTransition)
	})

	t.Run("should require assignment for pickup", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.ReadyForPickup)

		err := o.Transition(order.OutForDelivery)

		require.ErrorIs(t, err, order.ErrDelivererIsRequired)
		assert.Equal(t, order.ReadyForPickup, o.Status())
		assert.Nil(t, o.DelivererID())
	})

	t.Run("should deliver after assignment", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.Delivered)

		assert.True(t, o.Status().IsTerminal())
		require.ErrorIs(t, o.Transition(order.Cancelled), errs.ErrIllegalTransition)
	})

	t.Run("should record one event per change", func(t *testing.T) {
		o := newPendingOrder(t)
		o.ClearDomainEvents()

		require.NoError(t, o.Transition(order.Confirmed))
		require.Error(t, o.Transition(order.Delivered))

		events := o.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.Pending, events[0].From)
		assert.Equal(t, order.Confirmed, events[0].To)
	})
}

func TestOrder_TransitionAs(t *testing.T) {
	t.Run("deliverer confirms", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.TransitionAs(order.Confirmed, order.Deliverer))
	})

	t.Run("shopper cannot confirm", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.TransitionAs(order.Confirmed, order.Shopper), errs.ErrActorNotPermitted)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("deliverer cannot cancel", func(t *testing.T) {
		o := newPendingOrder(t)
		require.ErrorIs(t, o.TransitionAs(order.Cancelled, order.Deliverer), errs.ErrActorNotPermitted)
	})
}

func TestOrder_AssignDeliverer(t *testing.T) {
	t.Run("should assign and move out for delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.ReadyForPickup)

		require.NoError(t, o.AssignDeliverer(kernel.MustIDFromString("d1")))

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DelivererID())
		assert.Equal(t, "d1", o.DelivererID().String())

		events := o.DomainEvents()
		last := events[len(events)-1]
		assert.Equal(t, order.OutForDelivery, last.To)
		assert.Equal(t, "d1", last.DelivererID)
	})

	t.Run("second claim reports already assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.OutForDelivery)

		err := o.AssignDeliverer(kernel.MustIDFromString("d2"))

		var assigned *errs.AlreadyAssignedError
		require.ErrorAs(t, err, &assigned)
		assert.Equal(t, "d1", assigned.AssigneeID)
		assert.Equal(t, "d1", o.DelivererID().String())
	})

	t.Run("should reject orders not ready for pickup", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Preparing} {
			o := newPendingOrder(t)
			advanceTo(t, o, status)

			require.ErrorIs(t, o.AssignDeliverer(kernel.MustIDFromString("d1")), errs.ErrIllegalTransition)
			assert.Nil(t, o.DelivererID())
		}
	})

	t.Run("should reject cancelled orders", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel())

		require.ErrorIs(t, o.AssignDeliverer(kernel.MustIDFromString("d1")), errs.ErrIllegalTransition)
	})

	t.Run("should reject a blank deliverer", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.ReadyForPickup)

		require.ErrorIs(t, o.AssignDeliverer(kernel.ID{}), errs.ErrValueIsRequired)
	})

	t.Run("returned deliverer id is a copy", func(t *testing.T) {
		o := newPendingOrder(t)
		advanceTo(t, o, order.OutForDelivery)

		id := o.DelivererID()
		*id = kernel.MustIDFromString("mallory")

		assert.Equal(t, "d1", o.DelivererID().String())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	for _, status := range []order.Status{
		order.Confirmed, order.Preparing, order.ReadyForPickup, order.OutForDelivery, order.Delivered,
	} {
		t.Run("should not cancel "+status.String(), func(t *testing.T) {
			o := newPendingOrder(t)
			advanceTo(t, o, status)

			require.ErrorIs(t, o.Cancel(), errs.ErrIllegalTransition)
			assert.Equal(t, status, o.Status())
		})
	}
}

func TestRestoreOrder(t *testing.T) {
	items := []order.Item{newItem(t, "1", "Organic Apples", "4.99", 2)}
	id := kernel.MustIDFromString("ORD100")
	shopper := kernel.MustIDFromString("shopper1")
	deliverer := kernel.MustIDFromString("d1")

	t.Run("should restore a consistent order without events", func(t *testing.T) {
		o, err := order.RestoreOrder(id, shopper, &deliverer, items, order.OutForDelivery,
			kernel.MustMoneyFromString("9.98"), "1 A St", createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, "d1", o.DelivererID().String())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject a total that does not match the items", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopper, nil, items, order.Pending,
			kernel.MustMoneyFromString("10.00"), "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("should reject a deliverer on an unclaimed status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopper, &deliverer, items, order.ReadyForPickup,
			kernel.MustMoneyFromString("9.98"), "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a claimed status without deliverer", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopper, nil, items, order.Delivered,
			kernel.MustMoneyFromString("9.98"), "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopper, nil, items, order.Unknown,
			kernel.MustMoneyFromString("9.98"), "1 A St", createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
