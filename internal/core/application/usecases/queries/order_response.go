// Package queries contains read-only operations over orders. Handlers read
// through ports.OrderReader and return plain response values, so callers never
// hold a live aggregate.
package queries

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderResponse is a read model of one order.
type OrderResponse struct {
	ID              kernel.ID
	ShopperID       kernel.ID
	DelivererID     *kernel.ID
	Items           []OrderItemResponse
	Status          order.Status
	TotalPrice      kernel.Money
	DeliveryAddress string
	CreatedAt       time.Time
}

// OrderItemResponse is one order line with its derived subtotal.
type OrderItemResponse struct {
	ProductID       kernel.ID
	ProductName     string
	PriceAtPurchase kernel.Money
	Quantity        int
	Subtotal        kernel.Money
}

// NewOrderResponse maps an aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	lines := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderItemResponse{
			ProductID:       item.ProductID(),
			ProductName:     item.ProductName(),
			PriceAtPurchase: item.PriceAtPurchase(),
			Quantity:        item.Quantity(),
			Subtotal:        item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		ShopperID:       o.ShopperID(),
		DelivererID:     o.DelivererID(),
		Items:           lines,
		Status:          o.Status(),
		TotalPrice:      o.TotalPrice(),
		DeliveryAddress: o.DeliveryAddress(),
		CreatedAt:       o.CreatedAt(),
	}
}

// NewOrderResponses maps a list of aggregates, preserving order.
func NewOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}
