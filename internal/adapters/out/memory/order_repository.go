// Package memory keeps orders in process memory. It backs tests and the
// STORAGE_BACKEND=memory mode and gives the same guarantees as the Postgres
// adapter: conditional updates are atomic and stored orders are never aliased
// by callers.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// ChangeListener is called after an order was added or updated.
type ChangeListener func(orderID kernel.ID)

// OrderStore is a concurrency safe order table.
type OrderStore struct {
	mu        sync.RWMutex
	orders    map[string]*order.Order
	sequence  []string
	listeners []ChangeListener
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*order.Order),
	}
}

// OnChange registers a listener for committed writes. Listeners run on the
// writer's goroutine after the store lock is released.
func (s *OrderStore) OnChange(listener ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Add implements ports.OrderRepository.
func (s *OrderStore) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	key := aggregate.ID().String()

	s.mu.Lock()
	if _, exists := s.orders[key]; exists {
		s.mu.Unlock()
		return errs.NewObjectAlreadyExistsError("order", key)
	}
	s.orders[key] = stored
	s.sequence = append(s.sequence, key)
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, aggregate.ID())
	return nil
}

// Update implements ports.OrderRepository. The precondition check and the write
// happen under one lock.
func (s *OrderStore) Update(_ context.Context, aggregate *order.Order, precondition ports.Precondition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := clone(aggregate)
	if err != nil {
		return err
	}

	key := aggregate.ID().String()

	s.mu.Lock()
	current, exists := s.orders[key]
	if !exists {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("order", key)
	}
	if current.Status() != precondition.Status ||
		(precondition.DelivererUnset && current.DelivererID() != nil) {
		s.mu.Unlock()
		return errs.ErrStaleObject
	}
	s.orders[key] = stored
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, aggregate.ID())
	return nil
}

// Get implements ports.OrderReader.
func (s *OrderStore) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	stored, exists := s.orders[id.String()]
	s.mu.RUnlock()

	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return clone(stored)
}

// Find implements ports.OrderReader. Unsorted results come back in insertion order.
func (s *OrderStore) Find(_ context.Context, filter ports.Filter) ([]*order.Order, error) {
	s.mu.RLock()
	matched := make([]*order.Order, 0)
	for _, key := range s.sequence {
		if o := s.orders[key]; filter.Matches(o) {
			matched = append(matched, o)
		}
	}
	s.mu.RUnlock()

	if filter.Sort == ports.NewestFirst {
		// equal creation times fall back to the latest insertion first
		slices.Reverse(matched)
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt().After(matched[j].CreatedAt())
		})
	}

	result := make([]*order.Order, 0, len(matched))
	for _, o := range matched {
		c, err := clone(o)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func notify(listeners []ChangeListener, id kernel.ID) {
	for _, listener := range listeners {
		listener(id)
	}
}

// clone detaches an order from its caller. Domain events stay with the caller.
func clone(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.ShopperID(),
		o.DelivererID(),
		o.Items(),
		o.Status(),
		o.TotalPrice(),
		o.DeliveryAddress(),
		o.CreatedAt(),
	)
}
