package jobs

import (
	"fmt"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"
)

// Schedules holds one cron expression per job.
type Schedules struct {
	Refresh string
	Sync    string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	boardRefreshJob *BoardRefreshJob
	orderSyncJob    *OrderSyncJob
}

func NewJobManager(
	refreshHandler commands.RefreshBoardCommandHandler,
	syncHandler commands.SyncOrdersCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		boardRefreshJob: NewBoardRefreshJob(refreshHandler, schedules.Refresh, logger),
		orderSyncJob:    NewOrderSyncJob(syncHandler, schedules.Sync, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.boardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start board refresh job: %w", err)
	}

	if err := jm.orderSyncJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.boardRefreshJob.Stop()
		return fmt.Errorf("failed to start order sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderSyncJob.Stop()
	jm.boardRefreshJob.Stop()
}
