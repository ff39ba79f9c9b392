package http

import (
	"errors"
	"fmt"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/generated/servers"
	"grocery/internal/pkg/errs"
)

func toOrder(resp queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, servers.OrderItem{
			ProductId:       item.ProductID.String(),
			ProductName:     item.ProductName,
			PriceAtPurchase: item.PriceAtPurchase.String(),
			Quantity:        item.Quantity,
			Subtotal:        item.Subtotal.String(),
		})
	}

	out := servers.Order{
		OrderId:         resp.ID.String(),
		ShopperId:       resp.ShopperID.String(),
		Items:           items,
		Status:          servers.OrderStatus(resp.Status.String()),
		TotalPrice:      resp.TotalPrice.String(),
		DeliveryAddress: resp.DeliveryAddress,
		CreatedAt:       resp.CreatedAt,
	}
	if resp.DelivererID != nil {
		deliverer := resp.DelivererID.String()
		out.DelivererId = &deliverer
	}
	return out
}

func toOrders(responses []queries.OrderResponse) []servers.Order {
	out := make([]servers.Order, 0, len(responses))
	for _, resp := range responses {
		out = append(out, toOrder(resp))
	}
	return out
}

// toItems converts request lines, reporting every bad line at once.
func toItems(lines []servers.NewOrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	var errList []error
	for i, line := range lines {
		item, err := toItem(line)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return items, nil
}

func toItem(line servers.NewOrderItem) (order.Item, error) {
	productID, err := kernel.IDFromString(line.ProductId)
	if err != nil {
		return order.Item{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	price, err := kernel.MoneyFromString(line.PriceAtPurchase)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, line.ProductName, price, line.Quantity)
}
