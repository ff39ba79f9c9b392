package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) Find(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

var base = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newOrder(t *testing.T, id, shopper string, minutes int, path ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.MustIDFromString("p1"), "Organic Apples", kernel.MustMoneyFromString("4.99"), 2)
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.MustIDFromString(id),
		kernel.MustIDFromString(shopper),
		[]order.Item{item},
		"1 A St",
		base.Add(time.Duration(minutes)*time.Minute),
	)
	require.NoError(t, err)
	for _, to := range path {
		require.NoError(t, o.Transition(to))
	}
	return o
}

// seed stores a small catalogue of orders across the lifecycle:
//
//	A s1 PENDING            t+0
//	B s1 CONFIRMED          t+1
//	C s2 PREPARING          t+2
//	D s2 READY_FOR_PICKUP   t+3
//	E s1 OUT_FOR_DELIVERY   t+4  d1
//	F s2 DELIVERED          t+5  d1
//	G s1 CANCELLED          t+6
//	H s2 OUT_FOR_DELIVERY   t+7  d2
func seed(t *testing.T) *memory.OrderStore {
	t.Helper()
	ready := []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup}

	claimed := func(id, shopper string, minutes int, deliverer string, delivered bool) *order.Order {
		o := newOrder(t, id, shopper, minutes, ready...)
		require.NoError(t, o.AssignDeliverer(kernel.MustIDFromString(deliverer)))
		if delivered {
			require.NoError(t, o.Transition(order.Delivered))
		}
		return o
	}

	store := memory.NewOrderStore()
	for _, o := range []*order.Order{
		newOrder(t, "A", "s1", 0),
		newOrder(t, "B", "s1", 1, order.Confirmed),
		newOrder(t, "C", "s2", 2, order.Confirmed, order.Preparing),
		newOrder(t, "D", "s2", 3, ready...),
		claimed("E", "s1", 4, "d1", false),
		claimed("F", "s2", 5, "d1", true),
		newOrder(t, "G", "s1", 6, order.Cancelled),
		claimed("H", "s2", 7, "d2", false),
	} {
		require.NoError(t, store.Add(t.Context(), o))
	}
	return store
}

func ids(responses []queries.OrderResponse) []string {
	out := make([]string, 0, len(responses))
	for _, r := range responses {
		out = append(out, r.ID.String())
	}
	return out
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetOrderQueryHandler(seed(t))

	t.Run("should return the order with items and total", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.MustIDFromString("E"))
		require.NoError(t, err)

		resp, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "E", resp.ID.String())
		assert.Equal(t, "s1", resp.ShopperID.String())
		require.NotNil(t, resp.DelivererID)
		assert.Equal(t, "d1", resp.DelivererID.String())
		assert.Equal(t, order.OutForDelivery, resp.Status)
		assert.Equal(t, "9.98", resp.TotalPrice.String())
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "9.98", resp.Items[0].Subtotal.String())
		assert.Equal(t, 2, resp.Items[0].Quantity)
	})

	t.Run("should report missing orders", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(kernel.MustIDFromString("missing"))
		require.NoError(t, err)

		_, err = h.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.ID{})

		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		_, err := h.Handle(ctx, queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	h := queries.NewListOrdersQueryHandler(seed(t))

	shopperQuery := func(id string) queries.ListQuery {
		q, err := queries.NewListShopperOrdersQuery(kernel.MustIDFromString(id))
		require.NoError(t, err)
		return q
	}
	delivererQuery := func(id string) queries.ListQuery {
		q, err := queries.NewListDelivererOrdersQuery(kernel.MustIDFromString(id))
		require.NoError(t, err)
		return q
	}

	tests := []struct {
		name  string
		query queries.ListQuery
		want  []string
	}{
		{"should list shopper orders newest first", shopperQuery("s1"), []string{"G", "E", "B", "A"}},
		{"should list an unknown shopper as empty", shopperQuery("s9"), []string{}},
		{"should list deliverer orders in any status", delivererQuery("d1"), []string{"F", "E"}},
		{"should list unclaimed ready orders", queries.NewListAvailableOrdersQuery(), []string{"D"}},
		{"should list orders awaiting preparation", queries.NewListPendingPreparationQuery(), []string{"C", "B", "A"}},
		{"should list every order", queries.NewListAllOrdersQuery(), []string{"H", "G", "F", "E", "D", "C", "B", "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Handle(ctx, tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("should reject zero value queries", func(t *testing.T) {
		for _, q := range []queries.ListQuery{
			queries.ListShopperOrdersQuery{},
			queries.ListDelivererOrdersQuery{},
			queries.ListAvailableOrdersQuery{},
			queries.ListPendingPreparationQuery{},
			queries.ListAllOrdersQuery{},
		} {
			_, err := h.Handle(ctx, q)
			require.Error(t, err)
		}
	})

	t.Run("should reject blank ids", func(t *testing.T) {
		_, err := queries.NewListShopperOrdersQuery(kernel.ID{})
		require.ErrorIs(t, err, errs.ErrValidation)

		_, err = queries.NewListDelivererOrdersQuery(kernel.ID{})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestListOrdersQueryHandler_Handle_StorageError(t *testing.T) {
	ctx := t.Context()
	reader := new(MockOrderReader)
	query := queries.NewListAvailableOrdersQuery()
	storageErr := errs.NewStorageError("find orders", errors.New("connection refused"))
	reader.On("Find", ctx, query.Filter()).Return(nil, storageErr).Once()

	_, err := queries.NewListOrdersQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrStorage)
	reader.AssertExpectations(t)
}
