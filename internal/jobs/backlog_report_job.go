package jobs

import (
	"context"
	"log/slog"

	"grocery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const backlogReportSchedule = "*/30 * * * * *"

// BacklogObserver receives the size of each work queue view.
type BacklogObserver interface {
	SetBacklog(view string, count int)
}

// BacklogReportJob measures the two work queues deliverers pick from: orders
// awaiting preparation and orders ready for pickup with nobody assigned.
type BacklogReportJob struct {
	handler  queries.ListOrdersQueryHandler
	observer BacklogObserver
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewBacklogReportJob(
	handler queries.ListOrdersQueryHandler,
	observer BacklogObserver,
	logger *slog.Logger,
) *BacklogReportJob {
	return &BacklogReportJob{
		handler:  handler,
		observer: observer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "backlog_report_job"),
	}
}

// Start begins reporting every 30 seconds.
func (j *BacklogReportJob) Start() error {
	_, err := j.cron.AddFunc(backlogReportSchedule, func() {
		j.Report(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Backlog report job started (running every 30 seconds)")
	return nil
}

// Report measures both queues once.
func (j *BacklogReportJob) Report(ctx context.Context) {
	views := []struct {
		name  string
		query queries.ListQuery
	}{
		{"pending_preparation", queries.NewListPendingPreparationQuery()},
		{"available", queries.NewListAvailableOrdersQuery()},
	}

	for _, view := range views {
		orders, err := j.handler.Handle(ctx, view.query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Backlog report failed", "view", view.name, "error", err)
			continue
		}
		if j.observer != nil {
			j.observer.SetBacklog(view.name, len(orders))
		}
		j.logger.DebugContext(ctx, "Order backlog", "view", view.name, "count", len(orders))
	}
}

// Stop stops the backlog report job.
func (j *BacklogReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Backlog report job stopped")
}
