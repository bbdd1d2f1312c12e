package jobs

import (
	"context"
	"errors"
	"log/slog"

	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderSyncJob periodically reconciles the backend with the commerce
// platform. It shares the syncing flag with the operator's Sync button, so a
// tick that lands during a manual sync does nothing.
type OrderSyncJob struct {
	handler  commands.SyncOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderSyncJob(handler commands.SyncOrdersCommandHandler, schedule string, logger *slog.Logger) *OrderSyncJob {
	return &OrderSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     newScheduler(),
		logger:   logger.With("component", "order_sync_job"),
	}
}

func (j *OrderSyncJob) Start() error {
	if isDisabled(j.schedule) {
		j.logger.InfoContext(context.Background(), "Order sync job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sync job started", "schedule", j.schedule)
	return nil
}

func (j *OrderSyncJob) run(ctx context.Context) {
	err := j.handler.Handle(ctx, commands.NewSyncOrdersCommand())
	if err != nil && !errors.Is(err, dashboard.ErrSyncInProgress) {
		j.logger.ErrorContext(ctx, "Order sync job failed", "error", err)
	}
}

func (j *OrderSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order sync job stopped")
}
