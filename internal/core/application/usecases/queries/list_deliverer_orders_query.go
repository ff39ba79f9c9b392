package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrListDelivererOrdersQueryIsNotConstructed = errors.New(
	"ListDelivererOrdersQuery must be created via NewListDelivererOrdersQuery constructor",
)

// ListDelivererOrdersQuery lists every order claimed by a deliverer, in any status.
type ListDelivererOrdersQuery struct {
	delivererID kernel.ID

	guard guard.ConstructorGuard
}

func NewListDelivererOrdersQuery(delivererID kernel.ID) (ListDelivererOrdersQuery, error) {
	if err := delivererID.Validate(); err != nil {
		return ListDelivererOrdersQuery{}, errs.NewValidationErrorWithCause(
			"deliverer orders query",
			errs.NewValueIsRequiredErrorWithCause("delivererId", err),
		)
	}

	return ListDelivererOrdersQuery{
		delivererID: delivererID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q ListDelivererOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDelivererOrdersQueryIsNotConstructed)
}

func (q ListDelivererOrdersQuery) DelivererID() kernel.ID {
	return q.delivererID
}

func (q ListDelivererOrdersQuery) Filter() ports.Filter {
	delivererID := q.delivererID
	return ports.Filter{DelivererID: &delivererID, Sort: ports.NewestFirst}
}
