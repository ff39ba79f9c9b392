package queries

import (
	"context"

	"grocery/internal/core/ports"
)

// ListQuery is a constructed list query that knows its storage filter.
// The same filter drives live subscriptions, so a stream and a one-off list
// never disagree about which orders belong to a view.
type ListQuery interface {
	Validate() error
	Filter() ports.Filter
}

// ListOrdersQueryHandler serves every order list view.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(reader)
//	query, _ := NewListShopperOrdersQuery(shopperID)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListOrdersQueryHandler(reader ports.OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{reader: reader}
}

// Handle returns the matching orders. An empty list is not an error.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(orders), nil
}
