package queries

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrListShopperOrdersQueryIsNotConstructed = errors.New(
	"ListShopperOrdersQuery must be created via NewListShopperOrdersQuery constructor",
)

// ListShopperOrdersQuery lists a shopper's own orders, newest first.
type ListShopperOrdersQuery struct {
	shopperID kernel.ID

	guard guard.ConstructorGuard
}

func NewListShopperOrdersQuery(shopperID kernel.ID) (ListShopperOrdersQuery, error) {
	if err := shopperID.Validate(); err != nil {
		return ListShopperOrdersQuery{}, errs.NewValidationErrorWithCause(
			"shopper orders query",
			errs.NewValueIsRequiredErrorWithCause("shopperId", err),
		)
	}

	return ListShopperOrdersQuery{
		shopperID: shopperID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListShopperOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListShopperOrdersQueryIsNotConstructed)
}

func (q ListShopperOrdersQuery) ShopperID() kernel.ID {
	return q.shopperID
}

func (q ListShopperOrdersQuery) Filter() ports.Filter {
	shopperID := q.shopperID
	return ports.Filter{ShopperID: &shopperID, Sort: ports.NewestFirst}
}
