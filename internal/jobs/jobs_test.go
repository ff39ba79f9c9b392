package jobs_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls atomic.Int32
}

func (r *countingRefresher) Refresh(context.Context) {
	r.calls.Add(1)
}

type backlogRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *backlogRecorder) SetBacklog(view string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[view] = count
}

func newOrder(t *testing.T, id string, advance ...order.Status) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.MustIDFromString("p1"), "Eggs", kernel.MustMoneyFromString("3.10"), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.MustIDFromString(id), kernel.MustIDFromString("s1"), []order.Item{item}, "1 A St", time.Now())
	require.NoError(t, err)
	for _, to := range advance {
		require.NoError(t, o.Transition(to))
	}
	return o
}

func TestFeedRefreshJob(t *testing.T) {
	t.Run("should refresh on schedule", func(t *testing.T) {
		refresher := &countingRefresher{}
		job := jobs.NewFeedRefreshJob(refresher, "@every 1s", slog.Default())

		require.NoError(t, job.Start())
		defer job.Stop()

		require.Eventually(t, func() bool { return refresher.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should reject a bad schedule", func(t *testing.T) {
		job := jobs.NewFeedRefreshJob(&countingRefresher{}, "not a schedule", slog.Default())

		require.Error(t, job.Start())
	})
}

func TestBacklogReportJob_Report(t *testing.T) {
	ctx := t.Context()
	store := memory.NewOrderStore()
	require.NoError(t, store.Add(ctx, newOrder(t, "A")))
	require.NoError(t, store.Add(ctx, newOrder(t, "B", order.Confirmed)))
	require.NoError(t, store.Add(ctx, newOrder(t, "C", order.Confirmed, order.Preparing, order.ReadyForPickup)))
	require.NoError(t, store.Add(ctx, newOrder(t, "D", order.Cancelled)))

	recorder := &backlogRecorder{}
	job := jobs.NewBacklogReportJob(queries.NewListOrdersQueryHandler(store), recorder, slog.Default())

	job.Report(ctx)

	assert.Equal(t, map[string]int{"pending_preparation": 2, "available": 1}, recorder.counts)
}

func TestJobManager(t *testing.T) {
	refresher := &countingRefresher{}
	manager := jobs.NewJobManager(
		refresher,
		"@every 1s",
		queries.NewListOrdersQueryHandler(memory.NewOrderStore()),
		&backlogRecorder{},
		slog.Default(),
	)

	require.NoError(t, manager.StartAll())
	require.Eventually(t, func() bool { return refresher.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	manager.StopAll()
}

func TestJobManager_StartAll_BadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(
		&countingRefresher{},
		"every now and then",
		queries.NewListOrdersQueryHandler(memory.NewOrderStore()),
		nil,
		slog.Default(),
	)

	require.Error(t, manager.StartAll())
}
