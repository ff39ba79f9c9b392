package order

import (
	"time"
)

// StatusChanged is the domain event recorded for every status change, including
// creation (From == Unknown, To == Pending).
type StatusChanged struct {
	OrderID     string
	ShopperID   string
	DelivererID string
	From        Status
	To          Status
	OccurredAt  time.Time
}

// IsCreation reports whether the event marks the creation of the order.
func (e StatusChanged) IsCreation() bool {
	return e.From == Unknown && e.To == Pending
}

func newStatusChanged(o *Order, from, to Status) StatusChanged {
	event := StatusChanged{
		OrderID:    o.id.String(),
		ShopperID:  o.shopperID.String(),
		From:       from,
		To:         to,
		OccurredAt: time.Now().UTC(),
	}
	if o.delivererID != nil {
		event.DelivererID = o.delivererID.String()
	}
	return event
}
