package queries

import (
	"errors"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery lists READY_FOR_PICKUP orders nobody has claimed yet.
type ListAvailableOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAvailableOrdersQuery() ListAvailableOrdersQuery {
	return ListAvailableOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

func (q ListAvailableOrdersQuery) Filter() ports.Filter {
	return ports.Filter{
		Statuses:       []order.Status{order.ReadyForPickup},
		DelivererUnset: true,
		Sort:           ports.NewestFirst,
	}
}
