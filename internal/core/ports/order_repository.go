// Package ports defines the contracts between the order lifecycle core and the
// infrastructure that stores, streams and publishes orders.
package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// SortOrder selects the ordering of Find results.
type SortOrder int

const (
	// Unsorted leaves ordering to the storage; callers must not rely on it.
	Unsorted SortOrder = iota
	// NewestFirst sorts by creation time, most recent first.
	NewestFirst
)

// Filter is a conjunction of equality predicates over order fields.
// Zero-valued fields do not constrain the result.
//
// Example:
//
//	// READY_FOR_PICKUP orders nobody has claimed yet
//	ports.Filter{Statuses: []order.Status{order.ReadyForPickup}, DelivererUnset: true}
type Filter struct {
	ShopperID      *kernel.ID
	DelivererID    *kernel.ID
	DelivererUnset bool
	Statuses       []order.Status
	Sort           SortOrder
}

// Matches evaluates the filter against one order. Storage adapters that cannot
// push predicates down use it directly; the feed broker uses it to route changes.
func (f Filter) Matches(o *order.Order) bool {
	if f.ShopperID != nil && !o.ShopperID().IsEqual(*f.ShopperID) {
		return false
	}

	deliverer := o.DelivererID()
	if f.DelivererUnset && deliverer != nil {
		return false
	}
	if f.DelivererID != nil && (deliverer == nil || !deliverer.IsEqual(*f.DelivererID)) {
		return false
	}

	if len(f.Statuses) == 0 {
		return true
	}
	for _, status := range f.Statuses {
		if o.Status() == status {
			return true
		}
	}
	return false
}

// Precondition guards Update. The stored order must still be in Status and, when
// DelivererUnset is set, must have no deliverer. A failed precondition is reported
// as errs.ErrStaleObject and leaves the stored order untouched.
type Precondition struct {
	Status         order.Status
	DelivererUnset bool
}

// OrderReader is the read side of the order store.
type OrderReader interface {
	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Find returns every order matching the filter. An empty result is not an error.
	Find(ctx context.Context, filter Filter) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// Add persists a new order. An existing id yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable fields of the order (status and deliverer) if the
	// precondition still holds for the stored copy.
	Update(ctx context.Context, aggregate *order.Order, precondition Precondition) error
}
