package ports

import (
	"context"

	"grocery/internal/core/domain/model/order"
)

// OrderFeed is a live query. The returned channel first receives the current
// snapshot, then a fresh snapshot whenever a matching order may have changed.
// Slow receivers only see the latest snapshot. The channel is closed once ctx is done.
type OrderFeed interface {
	Subscribe(ctx context.Context, filter Filter) (<-chan []*order.Order, error)
}

// EventPublisher delivers committed domain events to interested parties.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
