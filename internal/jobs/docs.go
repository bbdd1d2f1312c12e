// Package jobs provides scheduled background tasks for the dashboard.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// so the board stays current without the operator pressing Refresh.
//
// # Available Jobs
//
// 1. BoardRefreshJob - re-fetches orders and stats, picking up orders the
// backend ingested through its webhook
// 2. OrderSyncJob - asks the backend to re-pull orders from the commerce
// platform, then refreshes
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshHandler, syncHandler, jobs.Schedules{
//		Refresh: "@every 30s",
//		Sync:    jobs.ScheduleOff,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a seconds field or descriptors such as
// "@every 30s". ScheduleOff (or a blank schedule) leaves a job disabled. A run
// that is still in flight when the next one is due causes that tick to be
// skipped.
//
// # Error Handling
//
// Failed refreshes and syncs are already recorded on the board by the command
// handlers, so jobs only log them. A sync refused because another one is in
// flight is expected and not logged.
package jobs
