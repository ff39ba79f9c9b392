// Package events combines order event publishers.
package events

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// Fanout delivers every batch to all publishers and joins their errors.
// A failing publisher does not stop the others.
type Fanout struct {
	publishers []ports.EventPublisher
}

func NewFanout(publishers ...ports.EventPublisher) *Fanout {
	return &Fanout{publishers: publishers}
}

func (f *Fanout) Publish(ctx context.Context, events ...order.StatusChanged) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events...); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Noop drops every event. It stands in for Kafka when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, ...order.StatusChanged) error {
	return nil
}
