package queries

import (
	"errors"

	"grocery/internal/core/ports"
	"grocery/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery is the back-office view over every order, newest first.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery() ListAllOrdersQuery {
	return ListAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

func (q ListAllOrdersQuery) Filter() ports.Filter {
	return ports.Filter{Sort: ports.NewestFirst}
}
