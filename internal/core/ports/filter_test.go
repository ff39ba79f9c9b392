package ports_test

import (
	"testing"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, shopper string, advance ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.MustIDFromString("p1"), "Rice", kernel.MustMoneyFromString("1.20"), 4)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewID(), kernel.MustIDFromString(shopper), []order.Item{item}, "1 A St", time.Now())
	require.NoError(t, err)
	for _, to := range advance {
		require.NoError(t, o.Transition(to))
	}
	return o
}

func TestFilter_Matches(t *testing.T) {
	pending := newOrder(t, "s1")
	ready := newOrder(t, "s2", order.Confirmed, order.Preparing, order.ReadyForPickup)
	claimed := newOrder(t, "s2", order.Confirmed, order.Preparing, order.ReadyForPickup)
	require.NoError(t, claimed.AssignDeliverer(kernel.MustIDFromString("d1")))

	s1 := kernel.MustIDFromString("s1")
	d1 := kernel.MustIDFromString("d1")
	d2 := kernel.MustIDFromString("d2")

	tests := []struct {
		name   string
		filter ports.Filter
		want   []bool // pending, ready, claimed
	}{
		{"empty filter", ports.Filter{}, []bool{true, true, true}},
		{"shopper", ports.Filter{ShopperID: &s1}, []bool{true, false, false}},
		{"deliverer", ports.Filter{DelivererID: &d1}, []bool{false, false, true}},
		{"other deliverer", ports.Filter{DelivererID: &d2}, []bool{false, false, false}},
		{"deliverer unset", ports.Filter{DelivererUnset: true}, []bool{true, true, false}},
		{
			"available",
			ports.Filter{Statuses: []order.Status{order.ReadyForPickup}, DelivererUnset: true},
			[]bool{false, true, false},
		},
		{"preparation", ports.Filter{Statuses: order.PreparationStatuses()}, []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []bool{tt.filter.Matches(pending), tt.filter.Matches(ready), tt.filter.Matches(claimed)}
			assert.Equal(t, tt.want, got)
		})
	}
}
