// Package jobs provides scheduled background tasks for the grocery order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six field format with seconds.
//
// # Available Jobs
//
// 1. FeedRefreshJob - re-runs every live order query (FEED_REFRESH_SCHEDULE, once a minute by default)
// 2. BacklogReportJob - every 30 seconds, measures the orders awaiting preparation and the
// orders available for pickup and reports both counts as metrics
//
// # Usage
//
//	jobManager := jobs.NewJobManager(broker, config.FeedRefreshSchedule, listOrdersHandler, recorder, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Refresh failures are logged by the feed broker per subscription
// - Backlog report failures are logged per view and the other view is still reported
// - Failed job starts will stop any already running jobs
package jobs
