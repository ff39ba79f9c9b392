package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultFeedRefreshSchedule re-runs every live query once a minute.
const DefaultFeedRefreshSchedule = "0 * * * * *"

// FeedRefresher re-runs live order queries. Implemented by feed.Broker.
type FeedRefresher interface {
	Refresh(ctx context.Context)
}

// FeedRefreshJob periodically resynchronises live order queries, so that a change
// notification lost on the way (a dropped LISTEN connection, a restarted node)
// delays a subscriber by at most one period.
type FeedRefreshJob struct {
	refresher FeedRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewFeedRefreshJob creates the job. An empty schedule falls back to DefaultFeedRefreshSchedule.
func NewFeedRefreshJob(refresher FeedRefresher, schedule string, logger *slog.Logger) *FeedRefreshJob {
	if schedule == "" {
		schedule = DefaultFeedRefreshSchedule
	}
	return &FeedRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "feed_refresh_job"),
	}
}

// Start schedules the refresh.
func (j *FeedRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.refresher.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Feed refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the feed refresh job.
func (j *FeedRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Feed refresh job stopped")
}
