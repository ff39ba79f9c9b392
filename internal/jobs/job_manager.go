package jobs

import (
	"fmt"
	"log/slog"

	"grocery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	feedRefreshJob   *FeedRefreshJob
	backlogReportJob *BacklogReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	refresher FeedRefresher,
	feedRefreshSchedule string,
	listOrdersHandler queries.ListOrdersQueryHandler,
	observer BacklogObserver,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		feedRefreshJob:   NewFeedRefreshJob(refresher, feedRefreshSchedule, logger),
		backlogReportJob: NewBacklogReportJob(listOrdersHandler, observer, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.feedRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start feed refresh job: %w", err)
	}

	if err := jm.backlogReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.feedRefreshJob.Stop()
		return fmt.Errorf("failed to start backlog report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.backlogReportJob.Stop()
	jm.feedRefreshJob.Stop()
}
