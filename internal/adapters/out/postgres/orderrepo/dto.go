// Package orderrepo persists order aggregates in the orders and order_items tables.
package orderrepo

import (
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Status is stored by wire name so the
// table stays readable and independent of enum ordering.
type OrderDTO struct {
	ID              string          `gorm:"type:varchar(64);primaryKey"`
	ShopperID       string          `gorm:"type:varchar(64);not null;index"`
	DelivererID     *string         `gorm:"type:varchar(64);index"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric;not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the lines in the order the
// shopper placed them.
type OrderItemDTO struct {
	OrderID         string          `gorm:"type:varchar(64);primaryKey"`
	Position        int             `gorm:"primaryKey"`
	ProductID       string          `gorm:"type:varchar(64);not null"`
	ProductName     string          `gorm:"type:varchar(255);not null"`
	PriceAtPurchase decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity        int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().String()

	items := aggregate.Items()
	lines := make([]OrderItemDTO, 0, len(items))
	for idx, item := range items {
		lines = append(lines, OrderItemDTO{
			OrderID:         orderID,
			Position:        idx,
			ProductID:       item.ProductID().String(),
			ProductName:     item.ProductName(),
			PriceAtPurchase: item.PriceAtPurchase().Amount(),
			Quantity:        item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		ShopperID:       aggregate.ShopperID().String(),
		DelivererID:     delivererColumn(aggregate),
		Status:          aggregate.Status().String(),
		TotalPrice:      aggregate.TotalPrice().Amount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           lines,
	}
}

func delivererColumn(aggregate *order.Order) *string {
	id := aggregate.DelivererID()
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// toDomain rebuilds the aggregate through RestoreOrder, so corrupted rows are
// reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	shopperID, err := kernel.IDFromString(dto.ShopperID)
	if err != nil {
		return nil, err
	}

	var delivererID *kernel.ID
	if dto.DelivererID != nil {
		dID, dErr := kernel.IDFromString(*dto.DelivererID)
		if dErr != nil {
			return nil, dErr
		}
		delivererID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, itemErr := itemToDomain(line)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, shopperID, delivererID, items, status, total, dto.DeliveryAddress, dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.IDFromString(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.PriceAtPurchase)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.ProductName, price, dto.Quantity)
}
