package queries

import (
	"errors"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/guard"
)

var ErrListPendingPreparationQueryIsNotConstructed = errors.New(
	"ListPendingPreparationQuery must be created via NewListPendingPreparationQuery constructor",
)

// ListPendingPreparationQuery lists orders that still need work before pickup:
// PENDING, CONFIRMED and PREPARING.
type ListPendingPreparationQuery struct {
	guard guard.ConstructorGuard
}

func NewListPendingPreparationQuery() ListPendingPreparationQuery {
	return ListPendingPreparationQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPendingPreparationQuery) Validate() error {
	return q.guard.Validate(ErrListPendingPreparationQueryIsNotConstructed)
}

func (q ListPendingPreparationQuery) Filter() ports.Filter {
	return ports.Filter{Statuses: order.PreparationStatuses(), Sort: ports.NewestFirst}
}
